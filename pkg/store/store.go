package store

import (
	"context"

	"github.com/zemellal/gutenshelf/pkg/domain"
)

// Store defines persistence operations for book metadata records.
//
// The metadata store and the content store are not transactionally linked:
// a record can exist without content and vice versa. The workflow is the
// sole writer; duplicate-creation avoidance is the caller's responsibility.
type Store interface {
	GetBook(id string) (domain.Book, bool, error)
	// ListBooks returns all records ordered by creation time descending.
	ListBooks() ([]domain.Book, error)
	CreateBook(domain.Book) error
	// SetSummary is a best-effort update: an unknown id affects zero
	// records and is not an error.
	SetSummary(id, summary string) error
}

// KV is a plain external key-value dependency with set-if-absent semantics.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetIfAbsent(ctx context.Context, key, value string) error
}
