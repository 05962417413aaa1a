package app

import "errors"

var (
	// ErrInvalidBookID indicates the identifier is not a positive catalog number.
	ErrInvalidBookID = errors.New("invalid book id")
	// ErrBookNotFound indicates no metadata record exists for the identifier.
	ErrBookNotFound = errors.New("book not found")
	// ErrMetadataNotFound indicates the archive has no usable catalog metadata
	// (page absent or scraped title empty). Distinct from transport failure.
	ErrMetadataNotFound = errors.New("book metadata not found")
	// ErrContentUnavailable indicates book content is neither cached nor
	// fetchable right now.
	ErrContentUnavailable = errors.New("book content unavailable")
	// ErrArchiveFetch indicates a hard transport failure against the archive.
	ErrArchiveFetch = errors.New("archive fetch failed")
)
