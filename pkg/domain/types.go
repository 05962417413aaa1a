package domain

import "time"

// Book is the persisted metadata record for one archive catalog entry.
// ID is the Project Gutenberg catalog number in string form; it is the
// primary key across the metadata store and the content store.
type Book struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author,omitempty"`
	Description    string    `json:"description,omitempty"`
	Keywords       string    `json:"keywords,omitempty"`
	Classification string    `json:"classification,omitempty"`
	Summary        string    `json:"summary,omitempty"`
	ContentKey     string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Metadata holds the fields scraped from an archive catalog page.
// A scrape is usable only when Title is non-empty.
type Metadata struct {
	Title          string `json:"title"`
	Author         string `json:"author"`
	Description    string `json:"description"`
	Keywords       string `json:"keywords"`
	Classification string `json:"classification"`
}

// Usable reports whether the scrape produced enough to register a book.
func (m Metadata) Usable() bool {
	return m.Title != ""
}

// SummaryResult is the outcome of one summary generation attempt.
// Summary always carries displayable text: the model output on success,
// a human-readable failure message otherwise. Only successful summaries
// are persisted onto the book record.
type SummaryResult struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
	Cached  bool   `json:"cached,omitempty"`
}
