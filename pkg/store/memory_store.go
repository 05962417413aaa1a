package store

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/zemellal/gutenshelf/pkg/domain"
)

// MemoryStore keeps book records in-process. Used in tests and as a
// zero-dependency fallback.
type MemoryStore struct {
	mu    sync.RWMutex
	books map[string]domain.Book
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{books: make(map[string]domain.Book)}
}

// GetBook retrieves a record by id.
func (m *MemoryStore) GetBook(id string) (domain.Book, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.books[id]
	return b, ok, nil
}

// ListBooks returns all records, newest first.
func (m *MemoryStore) ListBooks() ([]domain.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	books := make([]domain.Book, 0, len(m.books))
	for _, b := range m.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].CreatedAt.After(books[j].CreatedAt)
	})
	return books, nil
}

// CreateBook inserts a record, mirroring the relational store's validation.
func (m *MemoryStore) CreateBook(b domain.Book) error {
	if strings.TrimSpace(b.ID) == "" {
		return errors.New("book id required")
	}
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("book title required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.books[b.ID]; exists {
		return errors.New("duplicate book id")
	}
	m.books[b.ID] = b
	return nil
}

// SetSummary updates the summary; unknown ids affect nothing.
func (m *MemoryStore) SetSummary(id, summary string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return nil
	}
	b.Summary = summary
	m.books[id] = b
	return nil
}
