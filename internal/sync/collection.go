// ABOUTME: Collection keeps a page's working set of entities consistent
// ABOUTME: with server state under optimistic local mutation.
package sync

import (
	"context"
	"sync"
)

// Entity is any server-owned object identified by an integer id.
type Entity interface {
	EntityID() int
}

// Source is the remote side of a collection: one REST resource.
type Source[T Entity] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, id int, item T) (T, error)
	Delete(ctx context.Context, id int) error
}

// Collection holds an ordered working set of entities and reconciles it with
// server responses without re-fetching: create appends the server echo,
// update replaces in place, remove filters out. Every failure path leaves the
// held items in their last-known-consistent state.
//
// Each Load starts a new generation. A mutation response whose request was
// issued under an older generation is returned to the caller but not applied,
// so a reload always wins over responses that were in flight when it ran.
// Concurrent mutations on the same id are not queued or deduplicated: the
// last response to arrive wins, matching the at-least-once semantics of the
// underlying calls.
type Collection[T Entity] struct {
	source Source[T]

	mu    sync.Mutex
	items []T
	gen   uint64
}

// NewCollection creates an empty collection over the given source.
func NewCollection[T Entity](source Source[T]) *Collection[T] {
	return &Collection[T]{source: source}
}

// Items returns a snapshot of the held items in their current order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of held items.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get returns the held item with the given id.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Load fetches the full collection and replaces the held items with the
// server's order. Responses of requests issued before this Load are
// discarded when they arrive.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	items, err := c.source.List(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		c.items = items
	}
	out := make([]T, len(items))
	copy(out, items)
	return out, nil
}

// Create posts the draft and appends the server's echo to the held items.
// The draft is never stored; only the server object carries the real id.
func (c *Collection[T]) Create(ctx context.Context, draft T) (T, error) {
	gen := c.generation()

	created, err := c.source.Create(ctx, draft)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		c.items = append(c.items, created)
	}
	return created, nil
}

// Update puts the item and replaces the matching element in place, identity
// by id. The element keeps its position, so positional references held by
// consumers stay valid. An element no longer held is not re-inserted.
func (c *Collection[T]) Update(ctx context.Context, id int, item T) (T, error) {
	gen := c.generation()

	updated, err := c.source.Update(ctx, id, item)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		for i := range c.items {
			if c.items[i].EntityID() == id {
				c.items[i] = updated
				break
			}
		}
	}
	return updated, nil
}

// Remove deletes the item by id and filters it out of the held items once
// the server confirms. No other element is touched.
func (c *Collection[T]) Remove(ctx context.Context, id int) error {
	gen := c.generation()

	if err := c.source.Delete(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		kept := c.items[:0:0]
		for _, item := range c.items {
			if item.EntityID() != id {
				kept = append(kept, item)
			}
		}
		c.items = kept
	}
	return nil
}

func (c *Collection[T]) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}
