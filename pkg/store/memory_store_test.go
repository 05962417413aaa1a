package store

import (
	"testing"
	"time"

	"github.com/zemellal/gutenshelf/pkg/domain"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	book := domain.Book{ID: "84", Title: "Frankenstein", CreatedAt: time.Now().UTC()}
	if err := s.CreateBook(book); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, ok, err := s.GetBook("84")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Title != "Frankenstein" {
		t.Fatalf("title = %q", got.Title)
	}

	if _, ok, _ := s.GetBook("2701"); ok {
		t.Fatalf("unexpected hit for unknown id")
	}
}

func TestMemoryStoreRejectsMalformedRecords(t *testing.T) {
	s := NewMemoryStore()
	if err := s.CreateBook(domain.Book{ID: "", Title: "x"}); err == nil {
		t.Fatalf("expected error for empty id")
	}
	if err := s.CreateBook(domain.Book{ID: "84", Title: " "}); err == nil {
		t.Fatalf("expected error for empty title")
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	base := time.Now().UTC()
	for i, id := range []string{"84", "2701", "1342"} {
		if err := s.CreateBook(domain.Book{
			ID:        id,
			Title:     "t-" + id,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	books, err := s.ListBooks()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(books) != 3 || books[0].ID != "1342" || books[2].ID != "84" {
		t.Fatalf("unexpected order: %+v", books)
	}
}

func TestMemoryStoreSetSummary(t *testing.T) {
	s := NewMemoryStore()
	if err := s.CreateBook(domain.Book{ID: "84", Title: "Frankenstein", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.SetSummary("84", "a short summary"); err != nil {
		t.Fatalf("set summary: %v", err)
	}
	got, _, _ := s.GetBook("84")
	if got.Summary != "a short summary" {
		t.Fatalf("summary = %q", got.Summary)
	}

	// Best-effort semantics: unknown id is a no-op, not an error.
	if err := s.SetSummary("404404", "x"); err != nil {
		t.Fatalf("set summary on unknown id: %v", err)
	}
}
