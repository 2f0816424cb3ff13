package confirmgate

import (
	"github.com/sirupsen/logrus"
)

// Binding is what a page needs to render one guarded control
type Binding struct {
	ElementID string
	Prompt    string
	Token     string
	Target    string
}

// Binder attaches registered actions to the controls of a rendered page
type Binder struct {
	registry *Registry
	tokens   TokenStore
}

// NewBinder creates a binder over registry and tokens
func NewBinder(registry *Registry, tokens TokenStore) *Binder {
	return &Binder{
		registry: registry,
		tokens:   tokens,
	}
}

// Registry returns the underlying registry
func (b *Binder) Registry() *Registry {
	return b.registry
}

// Tokens returns the underlying ticket store
func (b *Binder) Tokens() TokenStore {
	return b.tokens
}

// Bind prepares the control elementID posting to target for owner.
// ok is false when nothing is registered under elementID; the page then
// renders without that control being guarded.
func (b *Binder) Bind(owner, elementID, target string) (binding Binding, ok bool) {
	action, found := b.registry.Lookup(elementID)
	if !found {
		return Binding{}, false
	}

	binding = Binding{
		ElementID: action.ElementID,
		Prompt:    action.PromptText,
		Target:    target,
	}

	// Without a ticket the browser still gets the prompt, and the server
	// falls back to its own confirmation page on submit.
	token, err := b.tokens.Issue(owner, elementID, target)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"element": elementID,
			"target":  target,
		}).WithError(err).Debug("No confirmation ticket issued")
		return binding, true
	}

	binding.Token = token
	return binding, true
}

// BindAll binds every control of one page for owner. The result has one
// entry per control, nil where nothing is registered under the element ID.
func (b *Binder) BindAll(owner string, controls []Control) []*Binding {
	bindings := make([]*Binding, len(controls))
	var guarded []Control
	var slots []int
	for i, c := range controls {
		action, found := b.registry.Lookup(c.ElementID)
		if !found {
			continue
		}
		bindings[i] = &Binding{
			ElementID: action.ElementID,
			Prompt:    action.PromptText,
			Target:    c.Target,
		}
		guarded = append(guarded, c)
		slots = append(slots, i)
	}
	if len(guarded) == 0 {
		return bindings
	}

	tokens, err := b.tokens.IssueAll(owner, guarded)
	if err != nil {
		logrus.WithField("controls", len(guarded)).WithError(err).Debug("No confirmation tickets issued")
		return bindings
	}
	for i, slot := range slots {
		bindings[slot].Token = tokens[i]
	}
	return bindings
}
