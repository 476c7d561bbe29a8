// ABOUTME: Generic in-memory collection kept in sync with its remote table
// ABOUTME: Writes go remote-first; local state changes only after success
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/venaworks/studiodesk/models"
	"github.com/venaworks/studiodesk/remote"
)

// collectionAPI is the slice of the remote layer a resource needs.
// Both *remote.API[T] and *remote.ProjectAPI satisfy it.
type collectionAPI[T models.Entity] interface {
	GetAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id string, patch remote.Patch) (*T, error)
	Delete(ctx context.Context, id string) error
}

// InsertPolicy controls where a newly created record lands in the local
// sequence. Most collections show newest first; lookup tables keep a
// sort order instead.
type InsertPolicy int

const (
	// Prepend puts new records at the front (newest-first collections).
	Prepend InsertPolicy = iota
	// Append puts new records at the back.
	Append
	// Sorted re-sorts after insert using the resource's less function.
	Sorted
)

// Resource is one entity collection mirrored locally. All access is
// guarded; Items returns a copy so callers never alias internal state.
type Resource[T models.Entity] struct {
	api    collectionAPI[T]
	policy InsertPolicy
	less   func(a, b T) bool

	mu     sync.RWMutex
	items  []T
	loaded bool
	err    error
}

// NewResource builds a resource with the default newest-first insert
// policy.
func NewResource[T models.Entity](api collectionAPI[T]) *Resource[T] {
	return &Resource[T]{api: api, policy: Prepend}
}

// NewAppendResource builds a resource whose new records go to the back.
func NewAppendResource[T models.Entity](api collectionAPI[T]) *Resource[T] {
	return &Resource[T]{api: api, policy: Append}
}

// NewSortedResource builds a resource kept ordered by less after every
// insert.
func NewSortedResource[T models.Entity](api collectionAPI[T], less func(a, b T) bool) *Resource[T] {
	return &Resource[T]{api: api, policy: Sorted, less: less}
}

// Load replaces the local sequence with the remote state. On failure
// the previous sequence is kept and the error is recorded, so one bad
// collection never wipes data already on hand.
func (r *Resource[T]) Load(ctx context.Context) error {
	items, err := r.api.GetAll(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.err = err
		return err
	}
	r.items = items
	r.loaded = true
	r.err = nil
	return nil
}

// Items returns a copy of the local sequence.
func (r *Resource[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Get returns the local record with the given id.
func (r *Resource[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the local sequence length.
func (r *Resource[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Loaded reports whether the last load succeeded at least once.
func (r *Resource[T]) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Err returns the error from the most recent failed load, or nil.
func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Create writes the record remotely, then inserts the stored result
// into the local sequence per the insert policy.
func (r *Resource[T]) Create(ctx context.Context, item T) (*T, error) {
	created, err := r.api.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.policy {
	case Append:
		r.items = append(r.items, *created)
	case Sorted:
		r.items = append(r.items, *created)
		sort.SliceStable(r.items, func(i, j int) bool { return r.less(r.items[i], r.items[j]) })
	default:
		r.items = append([]T{*created}, r.items...)
	}
	return created, nil
}

// Update patches the record remotely, then replaces it in place
// locally. Sorted resources re-sort in case the sort key changed.
func (r *Resource[T]) Update(ctx context.Context, id string, patch remote.Patch) (*T, error) {
	updated, err := r.api.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].EntityID() == id {
			r.items[i] = *updated
			break
		}
	}
	if r.policy == Sorted {
		sort.SliceStable(r.items, func(i, j int) bool { return r.less(r.items[i], r.items[j]) })
	}
	return updated, nil
}

// Delete removes the record remotely, then drops it from the local
// sequence.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := r.api.Delete(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].EntityID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return nil
}

// Set replaces the whole local sequence without a remote call. This is
// the raw setter handed to feature code that recomputes a collection
// itself, e.g. after a bulk recalculation.
func (r *Resource[T]) Set(items []T) {
	copied := make([]T, len(items))
	copy(copied, items)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = copied
}

// Mutate edits one local record in place without a remote call. Used
// when an owned child collection changes out of band, e.g. attaching a
// new revision to its project.
func (r *Resource[T]) Mutate(id string, fn func(*T)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].EntityID() == id {
			fn(&r.items[i])
			return true
		}
	}
	return false
}
