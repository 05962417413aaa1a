package gutenberg

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/zemellal/gutenshelf/pkg/domain"
)

// ScrapeMetadata extracts structured book fields from an archive catalog
// page. Title and author come from itemprop-annotated elements, the rest
// from named meta tags. Absent fields yield empty strings; callers decide
// usability via Metadata.Usable.
func ScrapeMetadata(page string) (domain.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("parse catalog page: %w", err)
	}
	return domain.Metadata{
		Title:          itemPropText(doc, "headline"),
		Author:         itemPropText(doc, "creator"),
		Description:    metaContent(doc, "description"),
		Keywords:       metaContent(doc, "keywords"),
		Classification: metaContent(doc, "classification"),
	}, nil
}

// metaContent returns the content attribute of the first <meta name=...>
// tag, or "" when the tag is absent.
func metaContent(doc *goquery.Document, name string) string {
	return doc.Find(fmt.Sprintf(`meta[name=%q]`, name)).First().AttrOr("content", "")
}

// itemPropText returns the leading text run of the first element carrying
// itemprop=prop. Only text before the element's first child element counts,
// so markup like <td itemprop="x"><a>...</a></td> yields "".
func itemPropText(doc *goquery.Document, prop string) string {
	sel := doc.Find(fmt.Sprintf(`[itemprop=%q]`, prop)).First()
	if len(sel.Nodes) == 0 {
		return ""
	}
	var text strings.Builder
	for c := sel.Nodes[0].FirstChild; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		text.WriteString(c.Data)
	}
	return strings.TrimSpace(text.String())
}
