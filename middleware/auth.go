package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/sirupsen/logrus"

	"github.com/blogem/workout-tracker/userctx"
)

// Session keys shared with the auth controller
const (
	SessionUserIDKey   = "user_id"
	SessionUsernameKey = "username"
	SessionRedirectKey = "redirect_after_login"
)

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID := SessionUserID(r)

		if userID == 0 {
			// Store the intended destination for redirect after login
			if r.Method == http.MethodGet {
				sess.Set(SessionRedirectKey, r.URL.Path)
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Add user to request context for use in handlers
		ctx := userctx.SetUserID(r.Context(), userID)
		if username, ok := sess.Get(SessionUsernameKey).(string); ok {
			ctx = userctx.SetUsername(ctx, username)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionUserID returns the signed-in user's ID, 0 when nobody is signed in
func SessionUserID(r *http.Request) int {
	sess := session.GetSession(r)
	if sess == nil {
		return 0
	}
	id, _ := sess.Get(SessionUserIDKey).(int)
	return id
}

// SessionOwner identifies who confirmation tickets are issued to: the
// session of a signed-in user. Anonymous requests have no owner.
func SessionOwner(r *http.Request) string {
	if SessionUserID(r) == 0 {
		return ""
	}
	return session.GetSession(r).ID()
}

// SignIn stores the user in the session and returns where to go next
func SignIn(r *http.Request, userID int, username string) string {
	sess := session.GetSession(r)
	sess.Set(SessionUserIDKey, userID)
	sess.Set(SessionUsernameKey, username)

	next := "/dashboard"
	if redirect, ok := sess.Get(SessionRedirectKey).(string); ok && IsLocalPath(redirect) {
		next = redirect
	}
	sess.Delete(SessionRedirectKey)

	logrus.WithField("user_id", userID).Info("User signed in")
	return next
}
