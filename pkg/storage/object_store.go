package storage

import "context"

// ObjectStore provides access to the book content blob store.
// Content is written once on first successful archive fetch and treated as
// immutable afterwards; Put nonetheless has overwrite semantics, so repeated
// misses that refetch the same stable source text converge.
type ObjectStore interface {
	// Get returns the object text, reporting a missing key as (_, false, nil).
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, text string) error
}
