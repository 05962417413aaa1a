package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/zemellal/gutenshelf/pkg/domain"
	"github.com/zemellal/gutenshelf/pkg/gutenberg"
	"github.com/zemellal/gutenshelf/pkg/storage"
	"github.com/zemellal/gutenshelf/pkg/store"
)

const greetingKey = "name"

// ArchiveClient is the slice of the Gutenberg client the workflow needs.
type ArchiveClient interface {
	FetchText(ctx context.Context, id string) (string, error)
	FetchMetadataPage(ctx context.Context, id string) (string, bool, error)
}

// Summarizer generates a summary for a book title plus optional excerpt.
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) domain.SummaryResult
}

// Config wires required dependencies for the core application.
type Config struct {
	Store      store.Store
	Objects    storage.ObjectStore
	KV         store.KV
	Archive    ArchiveClient
	Summarizer Summarizer
	OwnerName  string
}

// App orchestrates book materialization across the metadata store, the
// content store, the archive, and the summary generator.
//
// The lazy get path is deliberately not transactional: content and metadata
// are ensured independently, so one sub-step can succeed and persist while
// the other fails. Two concurrent requests for the same missing identifier
// may both fetch and both write; writes are convergent (the source text is
// stable), so last-write-wins is accepted rather than guarded against.
type App struct {
	store      store.Store
	objects    storage.ObjectStore
	kv         store.KV
	archive    ArchiveClient
	summarizer Summarizer
	ownerName  string
}

// New constructs the application core.
func New(cfg Config) (*App, error) {
	if cfg.Store == nil {
		return nil, errors.New("store required")
	}
	if cfg.Objects == nil {
		return nil, errors.New("object store required")
	}
	if cfg.Archive == nil {
		return nil, errors.New("archive client required")
	}
	if cfg.Summarizer == nil {
		return nil, errors.New("summarizer required")
	}
	return &App{
		store:      cfg.Store,
		objects:    cfg.Objects,
		kv:         cfg.KV,
		archive:    cfg.Archive,
		summarizer: cfg.Summarizer,
		ownerName:  cfg.OwnerName,
	}, nil
}

// fetchOutcome tells a caller whether a sub-step hit the cache or reached
// out to the archive. Failures travel separately as errors.
type fetchOutcome int

const (
	outcomeFound fetchOutcome = iota
	outcomeFetched
)

// ContentKey is the blob-store key for a catalog identifier.
func ContentKey(id string) string {
	return fmt.Sprintf("book-%s.txt", id)
}

// ValidateBookID checks that id is the string form of a positive integer.
func ValidateBookID(id string) error {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidBookID, id)
	}
	return nil
}

// CreateBook explicitly registers a book. An existing record is returned
// as-is (idempotent). Otherwise both the content fetch and the metadata
// scrape must succeed before either store is written, so a failed create
// persists nothing.
func (a *App) CreateBook(ctx context.Context, id string) (domain.Book, error) {
	if err := ValidateBookID(id); err != nil {
		return domain.Book{}, err
	}
	if book, ok, err := a.store.GetBook(id); err != nil {
		return domain.Book{}, fmt.Errorf("lookup book %s: %w", id, err)
	} else if ok {
		return book, nil
	}

	text, err := a.archive.FetchText(ctx, id)
	if err != nil {
		return domain.Book{}, fmt.Errorf("%w: %v", ErrArchiveFetch, err)
	}
	meta, err := a.scrapeMetadata(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}

	if err := a.objects.Put(ctx, ContentKey(id), text); err != nil {
		return domain.Book{}, fmt.Errorf("save content %s: %w", id, err)
	}
	book := a.newRecord(id, meta)
	if err := a.store.CreateBook(book); err != nil {
		return domain.Book{}, fmt.Errorf("save book %s: %w", id, err)
	}
	return book, nil
}

// GetOrFetchBook is the lazy materialization path: it ensures content and
// metadata exist, fetching and persisting whichever is missing, and returns
// the record. Once both exist a call is a pure read. The two sub-steps are
// independent; a metadata failure after content was persisted leaves the
// content in place.
func (a *App) GetOrFetchBook(ctx context.Context, id string) (domain.Book, error) {
	if err := ValidateBookID(id); err != nil {
		return domain.Book{}, err
	}
	if _, _, err := a.ensureContent(ctx, id); err != nil {
		return domain.Book{}, err
	}
	book, _, err := a.ensureRecord(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

// ReadBook returns the full cached text, fetching and persisting it on a
// miss. Metadata backfill on this path is best-effort: the text is returned
// even when no record could be created.
func (a *App) ReadBook(ctx context.Context, id string) (string, error) {
	if err := ValidateBookID(id); err != nil {
		return "", err
	}
	text, outcome, err := a.ensureContent(ctx, id)
	if err != nil {
		return "", err
	}
	if outcome == outcomeFetched {
		if _, _, err := a.ensureRecord(ctx, id); err != nil {
			slog.Warn("metadata backfill failed", "book_id", id, "err", err)
		}
	}
	return text, nil
}

// SummarizeBook returns the stored summary when present, otherwise extracts
// an excerpt from the cached content and asks the generator. Successful
// summaries are persisted; failures are returned to the caller as a
// displayable result, not as an error.
func (a *App) SummarizeBook(ctx context.Context, id string) (domain.SummaryResult, error) {
	if err := ValidateBookID(id); err != nil {
		return domain.SummaryResult{}, err
	}
	book, ok, err := a.store.GetBook(id)
	if err != nil {
		return domain.SummaryResult{}, fmt.Errorf("lookup book %s: %w", id, err)
	}
	if !ok {
		return domain.SummaryResult{}, fmt.Errorf("%w: %s", ErrBookNotFound, id)
	}
	if book.Summary != "" {
		return domain.SummaryResult{Success: true, Summary: book.Summary, Cached: true}, nil
	}

	text, ok, err := a.objects.Get(ctx, ContentKey(id))
	if err != nil {
		return domain.SummaryResult{}, fmt.Errorf("load content %s: %w", id, err)
	}
	if !ok {
		return domain.SummaryResult{}, fmt.Errorf("%w: %s", ErrContentUnavailable, id)
	}

	excerpt := gutenberg.Extract(text)
	result := a.summarizer.Summarize(ctx, book.Title, excerpt)
	if result.Success {
		if err := a.store.SetSummary(id, result.Summary); err != nil {
			return domain.SummaryResult{}, fmt.Errorf("save summary %s: %w", id, err)
		}
	}
	return result, nil
}

// ListBooks returns all registered books, newest first.
func (a *App) ListBooks() ([]domain.Book, error) {
	return a.store.ListBooks()
}

// Greeting seeds the owner name into the KV store once and reads it back,
// defaulting to "Anonymous" when nothing is stored.
func (a *App) Greeting(ctx context.Context) (string, error) {
	if a.kv == nil {
		return "Anonymous", nil
	}
	if a.ownerName != "" {
		if err := a.kv.SetIfAbsent(ctx, greetingKey, a.ownerName); err != nil {
			return "", fmt.Errorf("seed greeting: %w", err)
		}
	}
	name, ok, err := a.kv.Get(ctx, greetingKey)
	if err != nil {
		return "", fmt.Errorf("load greeting: %w", err)
	}
	if !ok || name == "" {
		return "Anonymous", nil
	}
	return name, nil
}

func (a *App) ensureContent(ctx context.Context, id string) (string, fetchOutcome, error) {
	key := ContentKey(id)
	text, ok, err := a.objects.Get(ctx, key)
	if err != nil {
		return "", outcomeFound, fmt.Errorf("load content %s: %w", id, err)
	}
	if ok {
		return text, outcomeFound, nil
	}

	text, err = a.archive.FetchText(ctx, id)
	if err != nil {
		return "", outcomeFetched, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	if err := a.objects.Put(ctx, key, text); err != nil {
		return "", outcomeFetched, fmt.Errorf("save content %s: %w", id, err)
	}
	return text, outcomeFetched, nil
}

func (a *App) ensureRecord(ctx context.Context, id string) (domain.Book, fetchOutcome, error) {
	book, ok, err := a.store.GetBook(id)
	if err != nil {
		return domain.Book{}, outcomeFound, fmt.Errorf("lookup book %s: %w", id, err)
	}
	if ok {
		return book, outcomeFound, nil
	}

	meta, err := a.scrapeMetadata(ctx, id)
	if err != nil {
		return domain.Book{}, outcomeFetched, err
	}
	book = a.newRecord(id, meta)
	if err := a.store.CreateBook(book); err != nil {
		return domain.Book{}, outcomeFetched, fmt.Errorf("save book %s: %w", id, err)
	}
	return book, outcomeFetched, nil
}

// scrapeMetadata fetches and parses the catalog page, mapping both an
// absent page and an unusable scrape (empty title) to ErrMetadataNotFound.
func (a *App) scrapeMetadata(ctx context.Context, id string) (domain.Metadata, error) {
	page, ok, err := a.archive.FetchMetadataPage(ctx, id)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: %v", ErrArchiveFetch, err)
	}
	if !ok {
		return domain.Metadata{}, fmt.Errorf("%w: %s", ErrMetadataNotFound, id)
	}
	meta, err := gutenberg.ScrapeMetadata(page)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("scrape metadata %s: %w", id, err)
	}
	if !meta.Usable() {
		return domain.Metadata{}, fmt.Errorf("%w: %s", ErrMetadataNotFound, id)
	}
	return meta, nil
}

func (a *App) newRecord(id string, meta domain.Metadata) domain.Book {
	return domain.Book{
		ID:             id,
		Title:          meta.Title,
		Author:         meta.Author,
		Description:    meta.Description,
		Keywords:       meta.Keywords,
		Classification: meta.Classification,
		ContentKey:     ContentKey(id),
		CreatedAt:      time.Now().UTC(),
	}
}
