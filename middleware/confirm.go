package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/blogem/workout-tracker/confirmgate"
)

// Form fields understood by ConfirmGuard
const (
	ConfirmDecisionField = "confirm_decision"
	ConfirmTokenField    = "confirm_token"
	ReturnToField        = "return_to"

	DecisionAffirm  = "affirm"
	DecisionDecline = "decline"
)

// PromptView is the data needed to render the confirmation page
type PromptView struct {
	ElementID string
	Prompt    string
	Token     string
	Target    string
	ReturnTo  string
	Expired   bool
}

// PromptRenderer writes the confirmation page
type PromptRenderer func(w http.ResponseWriter, r *http.Request, view PromptView)

// GuardOption configures a ConfirmGuard
type GuardOption func(*ConfirmGuard)

// WithOwner replaces the function identifying the ticket owner of a request
func WithOwner(owner func(*http.Request) string) GuardOption {
	return func(g *ConfirmGuard) {
		g.owner = owner
	}
}

// WithConfirmObserver reports every resolved activation to o
func WithConfirmObserver(o confirmgate.Observer) GuardOption {
	return func(g *ConfirmGuard) {
		g.observer = o
	}
}

// WithFallback sets where declined actions go when no return path was posted
func WithFallback(path string) GuardOption {
	return func(g *ConfirmGuard) {
		g.fallback = path
	}
}

// ConfirmGuard holds guarded routes until the user has answered the prompt
// registered for the route's element. A request is dispatched to the wrapped
// handler only with an affirm decision and an unused ticket issued to the
// same owner for the same element and path.
type ConfirmGuard struct {
	binder   *confirmgate.Binder
	render   PromptRenderer
	owner    func(*http.Request) string
	observer confirmgate.Observer
	fallback string
}

// NewConfirmGuard creates a guard issuing tickets through binder
func NewConfirmGuard(binder *confirmgate.Binder, render PromptRenderer, opts ...GuardOption) *ConfirmGuard {
	g := &ConfirmGuard{
		binder:   binder,
		render:   render,
		owner:    SessionOwner,
		fallback: "/dashboard",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Require returns middleware guarding the next handler with the prompt
// registered under elementID. Unregistered IDs leave the route unguarded.
func (g *ConfirmGuard) Require(elementID string) func(http.Handler) http.Handler {
	action, ok := g.binder.Registry().Lookup(elementID)
	if !ok {
		logrus.WithField("element", elementID).Warn("No confirmation registered for element, route is not guarded")
		return func(next http.Handler) http.Handler { return next }
	}

	var opts []confirmgate.Option
	if g.observer != nil {
		opts = append(opts, confirmgate.WithObserver(g.observer))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// An outer guard for the same element already asked
			if confirmgate.IsAffirmed(r.Context(), elementID) {
				next.ServeHTTP(w, r)
				return
			}

			if err := r.ParseForm(); err != nil {
				http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
				return
			}

			owner := g.owner(r)
			target := r.URL.Path
			decision := r.PostForm.Get(ConfirmDecisionField)
			returnTo := SafeReturnTo(r.PostForm.Get(ReturnToField), g.fallback)

			log := logrus.WithFields(logrus.Fields{
				"element": elementID,
				"path":    target,
			})

			// Nothing has been asked yet
			if owner != "" && decision == "" {
				g.prompt(w, r, action, owner, target, returnTo, false)
				return
			}

			var prompter confirmgate.Prompter
			expired := false
			if owner != "" {
				token := r.PostForm.Get(ConfirmTokenField)
				prompter = confirmgate.PrompterFunc(func(context.Context, confirmgate.GuardedAction) (confirmgate.Decision, error) {
					// Redeeming burns the ticket on decline too
					redeemed := g.binder.Tokens().Redeem(token, owner, elementID, target)
					if decision != DecisionAffirm {
						return confirmgate.Declined, nil
					}
					if !redeemed {
						expired = true
						return confirmgate.Declined, nil
					}
					return confirmgate.Affirmed, nil
				})
			}

			gate, err := confirmgate.New(action, prompter, opts...)
			if err != nil {
				log.WithError(err).Error("Failed to create confirmation gate")
				http.Error(w, "Failed to confirm action", http.StatusInternalServerError)
				return
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			result, err := gate.Activate(r.Context(), func(ctx context.Context) error {
				next.ServeHTTP(ww, r.WithContext(confirmgate.WithAffirmed(ctx, elementID)))
				if ww.Status() >= http.StatusInternalServerError {
					return fmt.Errorf("guarded handler responded with status %d", ww.Status())
				}
				return nil
			})
			if result == confirmgate.Affirmed {
				if err != nil {
					log.WithError(err).Warn("Guarded action failed after confirmation")
				}
				return
			}

			if expired {
				log.Info("Confirmation ticket unknown or already used, asking again")
				g.prompt(w, r, action, owner, target, returnTo, true)
				return
			}

			log.WithField("outcome", "cancelled").Debug("Guarded action cancelled")
			http.Redirect(w, r, returnTo, http.StatusSeeOther)
		})
	}
}

func (g *ConfirmGuard) prompt(w http.ResponseWriter, r *http.Request, action confirmgate.GuardedAction, owner, target, returnTo string, expired bool) {
	binding, _ := g.binder.Bind(owner, action.ElementID, target)
	g.render(w, r, PromptView{
		ElementID: action.ElementID,
		Prompt:    action.PromptText,
		Token:     binding.Token,
		Target:    target,
		ReturnTo:  returnTo,
		Expired:   expired,
	})
}

// IsLocalPath reports whether p is a path on this site
func IsLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}
	u, err := url.Parse(p)
	return err == nil && u.Scheme == "" && u.Host == ""
}

// SafeReturnTo returns p when it is a local path, otherwise fallback
func SafeReturnTo(p, fallback string) string {
	if IsLocalPath(p) {
		return p
	}
	return fallback
}
