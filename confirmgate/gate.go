// Package confirmgate requires explicit user affirmation before a guarded
// action is dispatched. The prompt may resolve synchronously or later (an
// interstitial page, a browser dialog); either way the action only runs once
// the answer is known and only if the answer is Affirmed.
package confirmgate

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Decision is the user's answer to a confirmation prompt
type Decision int

const (
	Declined Decision = iota
	Affirmed
)

func (d Decision) String() string {
	if d == Affirmed {
		return "affirmed"
	}
	return "declined"
}

// Outcome is what an activation resolved to, as reported to observers
type Outcome string

const (
	OutcomeAffirmed    Outcome = "affirmed"
	OutcomeDeclined    Outcome = "declined"
	OutcomeUnavailable Outcome = "unavailable"
)

// ErrPromptUnavailable is returned by prompters that cannot ask the user.
// Activations that hit it are cancelled.
var ErrPromptUnavailable = errors.New("confirmation prompt unavailable")

// Prompter presents a guarded action's prompt and reports the answer
type Prompter interface {
	Confirm(ctx context.Context, action GuardedAction) (Decision, error)
}

// PrompterFunc adapts a function to the Prompter interface
type PrompterFunc func(ctx context.Context, action GuardedAction) (Decision, error)

// Confirm calls f
func (f PrompterFunc) Confirm(ctx context.Context, action GuardedAction) (Decision, error) {
	return f(ctx, action)
}

// Observer is notified once per activation
type Observer interface {
	ObserveConfirmation(action GuardedAction, outcome Outcome)
}

// Option configures a Gate
type Option func(*Gate)

// WithObserver reports activation outcomes to o
func WithObserver(o Observer) Option {
	return func(g *Gate) {
		g.observer = o
	}
}

// Gate guards a single action behind a prompter
type Gate struct {
	action   GuardedAction
	prompter Prompter
	observer Observer
}

// New creates a gate for action. A nil prompter is allowed and cancels every activation.
func New(action GuardedAction, prompter Prompter, opts ...Option) (*Gate, error) {
	if err := action.Validate(); err != nil {
		return nil, fmt.Errorf("invalid guarded action: %w", err)
	}

	g := &Gate{
		action:   action,
		prompter: prompter,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Action returns the guarded action
func (g *Gate) Action() GuardedAction {
	return g.action
}

// Activate asks for confirmation and runs proceed at most once, only when the
// answer is Affirmed. The returned error is proceed's error.
func (g *Gate) Activate(ctx context.Context, proceed func(context.Context) error) (Decision, error) {
	if g.prompter == nil {
		g.observe(OutcomeUnavailable)
		return Declined, nil
	}

	decision, err := g.prompter.Confirm(ctx, g.action)
	if err != nil {
		outcome := OutcomeDeclined
		if errors.Is(err, ErrPromptUnavailable) {
			outcome = OutcomeUnavailable
		}
		logrus.WithFields(logrus.Fields{
			"element": g.action.ElementID,
			"outcome": outcome,
		}).WithError(err).Debug("Confirmation not obtained, action cancelled")
		g.observe(outcome)
		return Declined, nil
	}

	if decision != Affirmed {
		g.observe(OutcomeDeclined)
		return Declined, nil
	}

	g.observe(OutcomeAffirmed)
	if proceed == nil {
		return Affirmed, nil
	}
	return Affirmed, proceed(ctx)
}

func (g *Gate) observe(outcome Outcome) {
	if g.observer != nil {
		g.observer.ObserveConfirmation(g.action, outcome)
	}
}

type affirmedKey struct{}

// WithAffirmed marks elementID as already affirmed for the rest of the request
func WithAffirmed(ctx context.Context, elementID string) context.Context {
	set := map[string]bool{elementID: true}
	if prev, ok := ctx.Value(affirmedKey{}).(map[string]bool); ok {
		for id := range prev {
			set[id] = true
		}
	}
	return context.WithValue(ctx, affirmedKey{}, set)
}

// IsAffirmed reports whether elementID was affirmed earlier in this request
func IsAffirmed(ctx context.Context, elementID string) bool {
	set, ok := ctx.Value(affirmedKey{}).(map[string]bool)
	return ok && set[elementID]
}
