package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/workout-tracker/models"
	"github.com/blogem/workout-tracker/repositories"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgBadCredentials = "Username or password is incorrect."
	msgCorruptUser    = "This user is corrupt. Please contact the administrator."
)

// UserService interface defines account business logic
type UserService interface {
	Register(ctx context.Context, form *models.RegistrationForm) (*models.User, error)
	Login(ctx context.Context, form *models.LoginForm) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	FindOrProvision(ctx context.Context, identity ExternalIdentity) (*models.User, error)
}

// ExternalIdentity is a user asserted by an OpenID Connect provider
type ExternalIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Nickname      string
}

// ErrEmailNotVerified is returned when an identity claims the email of an
// existing account without the provider having verified it
var ErrEmailNotVerified = errors.New("identity provider has not verified this email address")

// userService implements UserService interface
type userService struct {
	userRepo   repositories.UserRepository
	bcryptCost int
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, bcryptCost int) UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// Register validates the form, checks uniqueness and stores a new user with a hashed password
func (s *userService) Register(ctx context.Context, form *models.RegistrationForm) (*models.User, error) {
	errs := form.Validate()

	// Check for existing User via username
	if form.Username != "" {
		taken, err := s.exists(s.userRepo.GetByUsername(ctx, form.Username))
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("username", "Username is already registered to another user.")
		}
	}

	// Check for existing User via email, only once the format is valid
	if form.HasValidEmail() {
		taken, err := s.exists(s.userRepo.GetByEmail(ctx, form.Email))
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("email", "Email address is already registered to another user.")
		}
	}

	if errs.HasErrors() {
		logrus.WithField("errors", errs.GetMessages()).Debug("Registration rejected")
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			errs.Add("password", "Password is too long.")
			return nil, errs
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
		TOSAccepted:  form.TOSAccepted,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			errs.Add("username", "Username is already registered to another user.")
			return nil, errs
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logrus.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login checks credentials. Unknown users and wrong passwords get the same message.
func (s *userService) Login(ctx context.Context, form *models.LoginForm) (*models.User, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	var errs models.ValidationErrors

	user, err := s.userRepo.GetByUsername(ctx, form.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		logrus.WithField("username", form.Username).Debug("Login for unknown username")
		errs.Add("", msgBadCredentials)
		return nil, errs
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Provisioned accounts have no local password
	if user.PasswordHash == "" {
		errs.Add("", msgBadCredentials)
		return nil, errs
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		logrus.WithField("user_id", user.ID).Debug("Login with wrong password")
		errs.Add("", msgBadCredentials)
	default:
		// The stored value is not a usable bcrypt hash
		logrus.WithField("user_id", user.ID).WithError(err).Warn("Stored password hash is unusable")
		errs.Add("", msgCorruptUser)
	}
	return nil, errs
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid user ID %d: %w", id, repositories.ErrNotFound)
	}
	return s.userRepo.GetByID(ctx, id)
}

// FindOrProvision returns the user matching the identity's email, creating one on first login.
// Provisioned users get an unusable password and can only sign in through the provider.
func (s *userService) FindOrProvision(ctx context.Context, identity ExternalIdentity) (*models.User, error) {
	email := strings.TrimSpace(identity.Email)
	if email == "" {
		return nil, errors.New("identity provider did not supply an email address")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if !identity.EmailVerified {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"subject": identity.Subject,
			}).Warn("Refused to link identity with unverified email to existing user")
			return nil, ErrEmailNotVerified
		}
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	username, err := s.availableUsername(ctx, identity)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Username:    username,
		Email:       email,
		TOSAccepted: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"subject": identity.Subject,
	}).Info("User provisioned from identity provider")
	return user, nil
}

// availableUsername derives a unique username from the identity
func (s *userService) availableUsername(ctx context.Context, identity ExternalIdentity) (string, error) {
	base := sanitizeUsername(identity.Nickname)
	if len(base) < 2 {
		base = sanitizeUsername(strings.SplitN(identity.Email, "@", 2)[0])
	}
	if len(base) < 2 {
		base = "athlete"
	}

	candidate := base
	for i := 0; i < 5; i++ {
		taken, err := s.exists(s.userRepo.GetByUsername(ctx, candidate))
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		suffix, err := randomSuffix()
		if err != nil {
			return "", err
		}
		candidate = base + suffix
	}
	return "", fmt.Errorf("could not find a free username for %q", base)
}

// exists interprets a lookup result as a presence check
func (s *userService) exists(_ *models.User, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existing user: %w", err)
}

func sanitizeUsername(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > 20 {
		out = out[:20]
	}
	return out
}

func randomSuffix() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '0'
	}, base64.RawURLEncoding.EncodeToString(b)), nil
}
