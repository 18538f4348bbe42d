// Package optimistic maintains the in-memory entity lists behind the
// nested CRUD screens. A List holds confirmed, server-persisted entities
// keyed by their id, plus pending placeholders for creations still in
// flight. Mutator wires a List to a Repository and applies mutations
// locally before the server answers, rolling back on failure.
//
// A List does no I/O and knows nothing about the server; all operations
// are synchronous.
package optimistic

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"backoffice/internal/api"
)

// EntryState tags a list entry as persisted or still being created.
type EntryState int

const (
	// Confirmed entries exist on the server under their real id.
	Confirmed EntryState = iota
	// Pending entries are client-only placeholders. They carry a locally
	// generated id, render after all confirmed entries, and cannot be
	// edited or deleted.
	Pending
)

// Entry pairs an entity with its state for rendering.
type Entry[T api.Resource] struct {
	State EntryState
	Value T
	// ID is the server id for confirmed entries and the placeholder id
	// for pending ones.
	ID string
}

// ErrIndexOutOfRange is returned by index-addressed operations when the
// index does not fall inside the confirmed sequence.
var ErrIndexOutOfRange = fmt.Errorf("optimistic: index out of range")

// List is an ordered collection of entities addressed by id.
//
// Mutations from the original index-addressed design are preserved, but
// indices only ever address the confirmed sequence, so a pending
// placeholder can never be edited or deleted through them.
type List[T api.Resource] struct {
	mu        sync.Mutex
	confirmed []string // display order of confirmed ids
	pending   []string // placeholder ids, rendered after confirmed
	byID      map[string]T

	// newID generates placeholder ids; replaced in tests.
	newID func() string
}

// NewList returns an empty list.
func NewList[T api.Resource]() *List[T] {
	return &List[T]{
		byID:  make(map[string]T),
		newID: uuid.NewString,
	}
}

// Set replaces the confirmed sequence. Pending placeholders survive a
// Set so an in-flight creation is not silently dropped by a parent
// reload racing with it.
func (l *List[T]) Set(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, id := range l.confirmed {
		delete(l.byID, id)
	}
	l.confirmed = make([]string, 0, len(items))
	for _, item := range items {
		id := item.ResourceID()
		l.confirmed = append(l.confirmed, id)
		l.byID[id] = item
	}
}

// Push appends a confirmed entity.
func (l *List[T]) Push(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := item.ResourceID()
	l.confirmed = append(l.confirmed, id)
	l.byID[id] = item
}

// InsertAt inserts a confirmed entity at index, preserving order.
// Used to restore a deleted entry after a failed delete.
func (l *List[T]) InsertAt(index int, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index > len(l.confirmed) {
		return ErrIndexOutOfRange
	}
	id := item.ResourceID()
	l.confirmed = append(l.confirmed, "")
	copy(l.confirmed[index+1:], l.confirmed[index:])
	l.confirmed[index] = id
	l.byID[id] = item
	return nil
}

// UpdateAt replaces the confirmed entity at index. The replacement may
// carry a different id; the mapping follows.
func (l *List[T]) UpdateAt(index int, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.confirmed) {
		return ErrIndexOutOfRange
	}
	old := l.confirmed[index]
	id := item.ResourceID()
	if old != id {
		delete(l.byID, old)
	}
	l.confirmed[index] = id
	l.byID[id] = item
	return nil
}

// RemoveAt removes and returns the confirmed entity at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	if index < 0 || index >= len(l.confirmed) {
		return zero, ErrIndexOutOfRange
	}
	id := l.confirmed[index]
	item := l.byID[id]
	delete(l.byID, id)
	l.confirmed = append(l.confirmed[:index], l.confirmed[index+1:]...)
	return item, nil
}

// At returns the confirmed entity at index.
func (l *List[T]) At(index int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	if index < 0 || index >= len(l.confirmed) {
		return zero, ErrIndexOutOfRange
	}
	return l.byID[l.confirmed[index]], nil
}

// Get looks an entity up by id, confirmed or pending.
func (l *List[T]) Get(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	item, ok := l.byID[id]
	return item, ok
}

// UpdateByID replaces the confirmed entity carrying id, following the
// mapping if the replacement carries a different id. Reports whether id
// was present. Rollbacks address entities this way: the index captured
// before a call may be stale by the time the answer lands.
func (l *List[T]) UpdateByID(id string, item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cid := range l.confirmed {
		if cid != id {
			continue
		}
		next := item.ResourceID()
		if next != id {
			delete(l.byID, id)
		}
		l.confirmed[i] = next
		l.byID[next] = item
		return true
	}
	return false
}

// RemoveByID removes the confirmed entity carrying id.
func (l *List[T]) RemoveByID(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	for i, cid := range l.confirmed {
		if cid != id {
			continue
		}
		item := l.byID[id]
		delete(l.byID, id)
		l.confirmed = append(l.confirmed[:i], l.confirmed[i+1:]...)
		return item, true
	}
	return zero, false
}

// IndexOf returns the confirmed position of id, or -1.
func (l *List[T]) IndexOf(id string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cid := range l.confirmed {
		if cid == id {
			return i
		}
	}
	return -1
}

// PushPending appends a placeholder and returns its generated id.
func (l *List[T]) PushPending(item T) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.newID()
	l.pending = append(l.pending, id)
	l.byID[id] = item
	return id
}

// ClearPending drops every placeholder. Called when a create settles,
// whatever the outcome: placeholders are scaffolding, never reconciled
// field by field.
func (l *List[T]) ClearPending() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range l.pending {
		delete(l.byID, id)
	}
	l.pending = nil
}

// Clear empties the list entirely.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.confirmed = nil
	l.pending = nil
	l.byID = make(map[string]T)
}

// Len returns the number of confirmed entities.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.confirmed)
}

// PendingLen returns the number of placeholders.
func (l *List[T]) PendingLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Items returns the confirmed entities in display order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, len(l.confirmed))
	for _, id := range l.confirmed {
		out = append(out, l.byID[id])
	}
	return out
}

// Entries returns the full display sequence: confirmed entities in
// order, then pending placeholders in creation order.
func (l *List[T]) Entries() []Entry[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry[T], 0, len(l.confirmed)+len(l.pending))
	for _, id := range l.confirmed {
		out = append(out, Entry[T]{State: Confirmed, Value: l.byID[id], ID: id})
	}
	for _, id := range l.pending {
		out = append(out, Entry[T]{State: Pending, Value: l.byID[id], ID: id})
	}
	return out
}
