package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_CleanFormNavigatesDirectly(t *testing.T) {
	g := New()
	assert.False(t, g.Intercept("orders"))
	assert.False(t, g.Pending())
}

func TestGuard_DirtyFormParksNavigation(t *testing.T) {
	g := New()
	g.MarkDirty()

	require.True(t, g.Intercept("orders"))
	assert.True(t, g.Pending())

	// Accepting abandons the edits and releases the original target.
	target, ok := g.Accept()
	require.True(t, ok)
	assert.Equal(t, "orders", target)
	assert.False(t, g.Dirty())
	assert.False(t, g.Pending())
}

func TestGuard_DeclineKeepsEdits(t *testing.T) {
	g := New()
	g.MarkDirty()
	require.True(t, g.Intercept("orders"))

	g.Decline()

	assert.False(t, g.Pending())
	assert.True(t, g.Dirty(), "declining must keep the form dirty with edits intact")
	// The next navigation attempt is intercepted again.
	assert.True(t, g.Intercept("courses"))
}

func TestGuard_OnePendingTargetAtATime(t *testing.T) {
	g := New()
	g.MarkDirty()
	require.True(t, g.Intercept("orders"))
	require.True(t, g.Intercept("courses"))

	target, ok := g.Accept()
	require.True(t, ok)
	assert.Equal(t, "courses", target, "latest request replaces the parked target")
}

func TestGuard_SavedFormStopsIntercepting(t *testing.T) {
	g := New()
	g.MarkDirty()
	g.MarkSaved()

	assert.False(t, g.Dirty())
	assert.False(t, g.Intercept("orders"))
}

func TestGuard_AcceptWithoutPark(t *testing.T) {
	g := New()
	_, ok := g.Accept()
	assert.False(t, ok)
}
