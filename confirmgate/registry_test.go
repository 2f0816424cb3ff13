package confirmgate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BindTwiceKeepsOneBinding(t *testing.T) {
	registry, err := NewRegistry(DefaultActions()...)
	require.NoError(t, err)

	require.NoError(t, registry.Bind(GuardedAction{ElementID: DeleteWorkout, PromptText: "Really?"}))
	require.NoError(t, registry.Bind(GuardedAction{ElementID: DeleteWorkout, PromptText: "Really?"}))

	assert.Len(t, registry.Actions(), 3)
	action, ok := registry.Lookup(DeleteWorkout)
	require.True(t, ok)
	assert.Equal(t, "Really?", action.PromptText)
}

func TestRegistry_RejectsInvalidAction(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	assert.Error(t, registry.Bind(GuardedAction{ElementID: EndWorkout}))
	_, ok := registry.Lookup(EndWorkout)
	assert.False(t, ok)
}

func TestRegistry_ActionsSorted(t *testing.T) {
	registry, err := NewRegistry(DefaultActions()...)
	require.NoError(t, err)

	var ids []string
	for _, action := range registry.Actions() {
		ids = append(ids, action.ElementID)
	}
	assert.Equal(t, []string{DeleteExercise, DeleteWorkout, EndWorkout}, ids)
}

func TestMemoryTokenStore_SingleUse(t *testing.T) {
	store := NewMemoryTokenStore(time.Minute)

	token, err := store.Issue("sess-1", DeleteWorkout, "/workouts/1/delete")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, store.Redeem(token, "sess-1", DeleteWorkout, "/workouts/1/delete"))
	assert.False(t, store.Redeem(token, "sess-1", DeleteWorkout, "/workouts/1/delete"))
	assert.Zero(t, store.Len())
}

func TestMemoryTokenStore_MismatchKeepsTicket(t *testing.T) {
	store := NewMemoryTokenStore(time.Minute)

	token, err := store.Issue("sess-1", DeleteWorkout, "/workouts/1/delete")
	require.NoError(t, err)

	assert.False(t, store.Redeem(token, "sess-2", DeleteWorkout, "/workouts/1/delete"))
	assert.False(t, store.Redeem(token, "sess-1", EndWorkout, "/workouts/1/delete"))
	assert.False(t, store.Redeem(token, "sess-1", DeleteWorkout, "/workouts/2/delete"))

	assert.True(t, store.Redeem(token, "sess-1", DeleteWorkout, "/workouts/1/delete"))
}

func TestMemoryTokenStore_Expiry(t *testing.T) {
	store := NewMemoryTokenStore(time.Minute)
	now := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	token, err := store.Issue("sess-1", EndWorkout, "/workouts/1/end")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	assert.False(t, store.Redeem(token, "sess-1", EndWorkout, "/workouts/1/end"))
}

func TestMemoryTokenStore_NoOwner(t *testing.T) {
	store := NewMemoryTokenStore(0)

	_, err := store.Issue("", EndWorkout, "/workouts/1/end")
	assert.ErrorIs(t, err, ErrPromptUnavailable)
	assert.False(t, store.Redeem("anything", "", EndWorkout, "/workouts/1/end"))
}

func TestMemoryTokenStore_CapacityPerOwner(t *testing.T) {
	store := NewMemoryTokenStore(time.Hour)
	now := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	store.cap = 2

	first, err := store.Issue("sess-1", DeleteExercise, "/a")
	require.NoError(t, err)
	_, err = store.Issue("sess-1", DeleteExercise, "/b")
	require.NoError(t, err)
	_, err = store.Issue("sess-1", DeleteExercise, "/c")
	require.NoError(t, err)
	_, err = store.Issue("sess-2", DeleteExercise, "/a")
	require.NoError(t, err)

	assert.Equal(t, 3, store.Len())
	assert.False(t, store.Redeem(first, "sess-1", DeleteExercise, "/a"))
}

func TestMemoryTokenStore_ReissueRenewsSameTicket(t *testing.T) {
	now := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore(10*time.Minute, WithClock(func() time.Time { return now }))

	first, err := store.Issue("sess-1", EndWorkout, "/workouts/1/end")
	require.NoError(t, err)

	// A reload eight minutes later renews the ticket instead of minting another
	now = now.Add(8 * time.Minute)
	again, err := store.Issue("sess-1", EndWorkout, "/workouts/1/end")
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, store.Len())

	now = now.Add(8 * time.Minute)
	assert.True(t, store.Redeem(first, "sess-1", EndWorkout, "/workouts/1/end"))

	next, err := store.Issue("sess-1", EndWorkout, "/workouts/1/end")
	require.NoError(t, err)
	assert.NotEqual(t, first, next)
}

func TestMemoryTokenStore_IssueAllKeepsWholePage(t *testing.T) {
	store := NewMemoryTokenStore(time.Hour, WithCapacity(2))

	earlier, err := store.IssueAll("sess-1", []Control{
		{ElementID: DeleteExercise, Target: "/workouts/1/exercises/1/delete"},
		{ElementID: DeleteExercise, Target: "/workouts/1/exercises/2/delete"},
	})
	require.NoError(t, err)

	page := []Control{{ElementID: EndWorkout, Target: "/workouts/2/end"}, {ElementID: DeleteWorkout, Target: "/workouts/2/delete"}}
	for i := 1; i <= 3; i++ {
		page = append(page, Control{ElementID: DeleteExercise, Target: fmt.Sprintf("/workouts/2/exercises/%d/delete", i)})
	}
	tokens, err := store.IssueAll("sess-1", page)
	require.NoError(t, err)
	require.Len(t, tokens, len(page))

	assert.Equal(t, len(page), store.Len())
	assert.False(t, store.Redeem(earlier[0], "sess-1", DeleteExercise, "/workouts/1/exercises/1/delete"))
	for i, c := range page {
		assert.True(t, store.Redeem(tokens[i], "sess-1", c.ElementID, c.Target), c.Target)
	}
}

func TestMemoryTokenStore_IssueAllRejectsIncompleteControl(t *testing.T) {
	store := NewMemoryTokenStore(time.Hour)

	_, err := store.IssueAll("sess-1", []Control{{ElementID: EndWorkout, Target: "/workouts/1/end"}, {ElementID: DeleteWorkout}})
	assert.Error(t, err)
	assert.Zero(t, store.Len())
}

func TestBinder_BindAllPageLargerThanCapacity(t *testing.T) {
	registry, err := NewRegistry(DefaultActions()...)
	require.NoError(t, err)
	store := NewMemoryTokenStore(time.Hour)
	binder := NewBinder(registry, store)

	controls := []Control{
		{ElementID: EndWorkout, Target: "/workouts/3/end"},
		{ElementID: DeleteWorkout, Target: "/workouts/3/delete"},
		{ElementID: "archive-workout", Target: "/workouts/3/archive"},
	}
	for i := 1; i <= defaultTicketCap+5; i++ {
		controls = append(controls, Control{ElementID: DeleteExercise, Target: fmt.Sprintf("/workouts/3/exercises/%d/delete", i)})
	}

	// The same page rendered twice, as after a reload
	binder.BindAll("sess-1", controls)
	bindings := binder.BindAll("sess-1", controls)
	require.Len(t, bindings, len(controls))

	assert.Nil(t, bindings[2])
	assert.Equal(t, len(controls)-1, store.Len())

	require.NotNil(t, bindings[0])
	assert.Equal(t, "Are you sure you want to end your workout?", bindings[0].Prompt)
	assert.True(t, store.Redeem(bindings[0].Token, "sess-1", EndWorkout, "/workouts/3/end"))

	last := bindings[len(bindings)-1]
	require.NotNil(t, last)
	assert.True(t, store.Redeem(last.Token, "sess-1", DeleteExercise, last.Target))
}

func TestBinder_Bind(t *testing.T) {
	registry, err := NewRegistry(DefaultActions()...)
	require.NoError(t, err)
	store := NewMemoryTokenStore(time.Minute)
	binder := NewBinder(registry, store)

	binding, ok := binder.Bind("sess-1", DeleteWorkout, "/workouts/3/delete")
	require.True(t, ok)
	assert.Equal(t, DeleteWorkout, binding.ElementID)
	assert.Equal(t, "Are you sure you want to delete this workout? This cannot be undone.", binding.Prompt)
	assert.Equal(t, "/workouts/3/delete", binding.Target)
	assert.True(t, store.Redeem(binding.Token, "sess-1", DeleteWorkout, "/workouts/3/delete"))
}

func TestBinder_UnknownElementIsNoop(t *testing.T) {
	registry, err := NewRegistry(DefaultActions()...)
	require.NoError(t, err)
	store := NewMemoryTokenStore(time.Minute)
	binder := NewBinder(registry, store)

	binding, ok := binder.Bind("sess-1", "archive-workout", "/workouts/3/archive")
	assert.False(t, ok)
	assert.Equal(t, Binding{}, binding)
	assert.Zero(t, store.Len())
}

func TestBinder_NoOwnerStillRendersPrompt(t *testing.T) {
	registry, err := NewRegistry(DefaultActions()...)
	require.NoError(t, err)
	binder := NewBinder(registry, NewMemoryTokenStore(time.Minute))

	binding, ok := binder.Bind("", EndWorkout, "/workouts/3/end")
	require.True(t, ok)
	assert.Empty(t, binding.Token)
	assert.Equal(t, "Are you sure you want to end your workout?", binding.Prompt)
}
