package authenticator

import (
	"context"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// Subject returns the provider's stable user identifier
func (c Claims) Subject() string {
	return c.str("sub")
}

// Email returns the email claim. Check EmailVerified before trusting it.
func (c Claims) Email() string {
	return c.str("email")
}

// EmailVerified reports whether the provider verified the email claim.
// Some providers send the flag as a string.
func (c Claims) EmailVerified() bool {
	switch v := c["email_verified"].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// DisplayName tries nickname, then name, then email, then sub
func (c Claims) DisplayName() string {
	for _, key := range []string{"nickname", "name", "email", "sub"} {
		if v := c.str(key); v != "" {
			return v
		}
	}
	return ""
}

func (c Claims) str(key string) string {
	v, _ := c[key].(string)
	return v
}
