package confirmgate

import (
	"sort"
	"sync"
)

// Registry holds the guarded actions known to the application, keyed by element ID
type Registry struct {
	mu      sync.RWMutex
	actions map[string]GuardedAction
}

// NewRegistry creates a registry and binds the given actions
func NewRegistry(actions ...GuardedAction) (*Registry, error) {
	r := &Registry{actions: make(map[string]GuardedAction)}
	for _, action := range actions {
		if err := r.Bind(action); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Bind registers action. Binding an element that is already bound replaces its
// prompt; an element never carries more than one binding.
func (r *Registry) Bind(action GuardedAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[action.ElementID] = action
	return nil
}

// Lookup returns the action bound to elementID
func (r *Registry) Lookup(elementID string) (GuardedAction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	action, ok := r.actions[elementID]
	return action, ok
}

// Actions returns all bound actions ordered by element ID
func (r *Registry) Actions() []GuardedAction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]GuardedAction, 0, len(r.actions))
	for _, action := range r.actions {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].ElementID < actions[j].ElementID
	})
	return actions
}
