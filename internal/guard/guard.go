// Package guard implements the unsaved-changes navigation guard. A form
// marks itself dirty on the first divergence from its initial values;
// while dirty, page switches are parked behind a confirmation prompt
// instead of executing.
package guard

import "sync"

// Guard tracks one form's dirty state and at most one parked
// navigation target.
type Guard struct {
	mu      sync.Mutex
	dirty   bool
	parked  string
	hasPark bool
}

func New() *Guard {
	return &Guard{}
}

// MarkDirty records that the form diverged from its initial values.
func (g *Guard) MarkDirty() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dirty = true
}

// MarkSaved clears the dirty state after a successful submission.
func (g *Guard) MarkSaved() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dirty = false
	g.parked = ""
	g.hasPark = false
}

// Dirty reports whether edits would be lost by navigating away.
func (g *Guard) Dirty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dirty
}

// Intercept is called with the requested navigation target. When the
// form is clean it returns false and the caller navigates directly.
// When dirty, the target is parked — replacing any previously parked
// one — and the caller must show the confirmation prompt instead.
func (g *Guard) Intercept(target string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.dirty {
		return false
	}
	g.parked = target
	g.hasPark = true
	return true
}

// Accept abandons the edits: it returns the parked target to navigate
// to and resets the guard. ok is false if nothing was parked.
func (g *Guard) Accept() (target string, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.hasPark {
		return "", false
	}
	target = g.parked
	g.parked = ""
	g.hasPark = false
	g.dirty = false
	return target, true
}

// Decline cancels the pending navigation and keeps the user on the
// dirty form, edits intact.
func (g *Guard) Decline() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.parked = ""
	g.hasPark = false
}

// Pending reports whether a confirmation prompt should be visible.
func (g *Guard) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasPark
}
