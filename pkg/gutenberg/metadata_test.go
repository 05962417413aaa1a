package gutenberg

import "testing"

const catalogPage = `<!DOCTYPE html>
<html>
<head>
<meta name="description" content="Free kindle book and epub digitized and proofread by volunteers.">
<meta name="keywords" content="Whaling, Fiction, Sea stories">
<meta name="classification" content="PS: Language and Literatures: American literature">
<title>Moby Dick; Or, The Whale by Herman Melville</title>
</head>
<body>
<div itemscope itemtype="https://schema.org/Book">
<h1 itemprop="headline">Moby Dick; Or, The Whale</h1>
<a href="/ebooks/author/9" itemprop="creator">Herman Melville</a>
</div>
</body>
</html>`

func TestScrapeMetadata(t *testing.T) {
	meta, err := ScrapeMetadata(catalogPage)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if meta.Title != "Moby Dick; Or, The Whale" {
		t.Fatalf("title = %q", meta.Title)
	}
	if meta.Author != "Herman Melville" {
		t.Fatalf("author = %q", meta.Author)
	}
	if meta.Keywords != "Whaling, Fiction, Sea stories" {
		t.Fatalf("keywords = %q", meta.Keywords)
	}
	if meta.Classification == "" || meta.Description == "" {
		t.Fatalf("classification/description should be populated: %+v", meta)
	}
	if !meta.Usable() {
		t.Fatalf("expected usable metadata")
	}
}

func TestScrapeMetadataMissingHeadline(t *testing.T) {
	meta, err := ScrapeMetadata(`<html><body><p>No book here.</p></body></html>`)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if meta.Title != "" {
		t.Fatalf("title = %q, want empty", meta.Title)
	}
	if meta.Usable() {
		t.Fatalf("metadata without a title must not be usable")
	}
}

func TestScrapeMetadataLeadingTextRunOnly(t *testing.T) {
	// The itemprop contract counts only text before the first child element.
	page := `<html><body><span itemprop="creator"><a href="/a">Melville</a></span></body></html>`
	meta, err := ScrapeMetadata(page)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if meta.Author != "" {
		t.Fatalf("author = %q, want empty", meta.Author)
	}
}

func TestScrapeMetadataAbsentMetaTags(t *testing.T) {
	page := `<html><body><h1 itemprop="headline"> Frankenstein </h1></body></html>`
	meta, err := ScrapeMetadata(page)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if meta.Title != "Frankenstein" {
		t.Fatalf("title = %q, want trimmed text", meta.Title)
	}
	if meta.Description != "" || meta.Keywords != "" || meta.Classification != "" {
		t.Fatalf("absent meta tags should yield empty strings: %+v", meta)
	}
}
