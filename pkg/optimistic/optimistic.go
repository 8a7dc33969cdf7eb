// Package optimistic holds a shared snapshot that can be changed locally
// before a remote write confirms the change, and restored if it fails.
package optimistic

import (
	"context"
	"sync"
)

// Value is a snapshot of S replaced copy-on-write. Functions passed to
// Update and Mutate must return a new S and never modify their argument.
type Value[S any] struct {
	mu      sync.Mutex
	cur     S
	version uint64
}

// New returns a Value holding initial.
func New[S any](initial S) *Value[S] {
	return &Value[S]{cur: initial}
}

// Load returns the current snapshot.
func (v *Value[S]) Load() S {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cur
}

// Store replaces the snapshot.
func (v *Value[S]) Store(s S) {
	v.mu.Lock()
	v.cur = s
	v.version++
	v.mu.Unlock()
}

// Update replaces the snapshot with fn(current) and returns the result.
func (v *Value[S]) Update(fn func(S) S) S {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cur = fn(v.cur)
	v.version++
	return v.cur
}

// Mutate applies a local change, then runs remote. If remote fails the
// change is rolled back and the error is returned.
//
// revert undoes apply on a snapshot that may hold other writes made while
// remote was running. When nothing else touched the value the snapshot taken
// before apply is restored as is.
func (v *Value[S]) Mutate(
	ctx context.Context,
	apply, revert func(S) S,
	remote func(ctx context.Context) error,
) error {
	_, err := MutateWith(ctx, v, apply, revert,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, remote(ctx) },
		nil,
	)
	return err
}

// MutateWith is Mutate for remote calls that return a result. On success
// reconcile, when non-nil, folds the result into the current snapshot, for
// example to swap a placeholder for the stored entity.
func MutateWith[S, R any](
	ctx context.Context,
	v *Value[S],
	apply, revert func(S) S,
	remote func(ctx context.Context) (R, error),
	reconcile func(S, R) S,
) (R, error) {
	v.mu.Lock()
	prev := v.cur
	v.cur = apply(prev)
	v.version++
	applied := v.version
	v.mu.Unlock()

	res, err := remote(ctx)
	if err != nil {
		v.rollback(prev, applied, revert)
		var zero R
		return zero, err
	}

	if reconcile != nil {
		v.Update(func(s S) S { return reconcile(s, res) })
	}
	return res, nil
}

func (v *Value[S]) rollback(prev S, applied uint64, revert func(S) S) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case v.version == applied:
		v.cur = prev
	case revert != nil:
		v.cur = revert(v.cur)
	default:
		return
	}
	v.version++
}
