package optimistic

import (
	"context"

	"go.uber.org/zap"

	"backoffice/internal/api"
)

// Repository is the slice of a REST resource the mutator needs.
// internal/rest repositories satisfy it for their payload type.
type Repository[T api.Resource, P any] interface {
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id string, payload P) (T, error)
	Delete(ctx context.Context, id string) error
}

// Mutator bridges a List and a Repository, applying each mutation
// locally before the network call resolves and reconciling afterwards.
//
// Callers hand a context scoped to the owning page; tearing the page
// down cancels the call, and the rollback for a canceled call still
// runs so the list never keeps an unconfirmed state.
type Mutator[T api.Resource, P any] struct {
	list *List[T]
	repo Repository[T, P]
	log  *zap.Logger

	// onSettle, when set, runs after a create or update resolves
	// successfully. The dashboard uses it to close the inline editor
	// only once the server confirmed, never optimistically.
	onSettle func()
}

// NewMutator wires a mutator to its list and repository.
func NewMutator[T api.Resource, P any](list *List[T], repo Repository[T, P], log *zap.Logger) *Mutator[T, P] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mutator[T, P]{list: list, repo: repo, log: log}
}

// OnSettle registers the editing-affordance reset hook.
func (m *Mutator[T, P]) OnSettle(fn func()) { m.onSettle = fn }

// List exposes the underlying list for rendering.
func (m *Mutator[T, P]) List() *List[T] { return m.list }

// Create appends placeholder as a pending entry, issues the create call,
// and on success pushes the server-confirmed entity. The placeholder is
// cleared once the call settles, success or not.
func (m *Mutator[T, P]) Create(ctx context.Context, payload P, placeholder T) (T, error) {
	pid := m.list.PushPending(placeholder)
	created, err := m.repo.Create(ctx, payload)
	m.list.ClearPending()
	if err != nil {
		m.log.Warn("create rolled back", zap.String("placeholder", pid), zap.Error(err))
		var zero T
		return zero, err
	}
	m.list.Push(created)
	m.settle()
	return created, nil
}

// Update replaces the entry at index with optimistic immediately, then
// issues the update call. The server entity replaces the optimistic one
// on success; the captured original is restored on failure.
func (m *Mutator[T, P]) Update(ctx context.Context, index int, optimistic T, payload P) (T, error) {
	var zero T
	original, err := m.list.At(index)
	if err != nil {
		return zero, err
	}
	if err := m.list.UpdateAt(index, optimistic); err != nil {
		return zero, err
	}

	updated, err := m.repo.Update(ctx, original.ResourceID(), payload)
	if err != nil {
		m.log.Warn("update rolled back",
			zap.String("id", original.ResourceID()), zap.Error(err))
		// The index may have shifted while the call was in flight;
		// restore through the id instead.
		m.list.UpdateByID(optimistic.ResourceID(), original)
		return zero, err
	}
	m.list.UpdateByID(optimistic.ResourceID(), updated)
	m.settle()
	return updated, nil
}

// Delete removes the entry at index immediately and issues the delete
// call, re-inserting the original at its index if the call fails.
// A successful delete is final; there is nothing to reconcile.
func (m *Mutator[T, P]) Delete(ctx context.Context, index int) error {
	original, err := m.list.RemoveAt(index)
	if err != nil {
		return err
	}
	if err := m.repo.Delete(ctx, original.ResourceID()); err != nil {
		m.log.Warn("delete rolled back",
			zap.String("id", original.ResourceID()), zap.Error(err))
		if ierr := m.list.InsertAt(index, original); ierr != nil {
			// List shrank underneath us; append rather than lose the row.
			m.list.Push(original)
		}
		return err
	}
	m.settle()
	return nil
}

func (m *Mutator[T, P]) settle() {
	if m.onSettle != nil {
		m.onSettle()
	}
}
