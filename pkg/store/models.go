package store

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/zemellal/gutenshelf/pkg/domain"
)

// BookModel is the GORM row for one catalog entry. ScrapedFields keeps the
// raw scrape snapshot next to the flattened columns.
type BookModel struct {
	ID             string `gorm:"primaryKey"`
	Title          string `gorm:"not null"`
	Author         string
	Description    string `gorm:"type:text"`
	Keywords       string
	Classification string
	Summary        string `gorm:"type:text"`
	ContentKey     string
	ScrapedFields  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"not null;index"`
}

func bookToModel(b domain.Book) BookModel {
	scraped, _ := json.Marshal(domain.Metadata{
		Title:          b.Title,
		Author:         b.Author,
		Description:    b.Description,
		Keywords:       b.Keywords,
		Classification: b.Classification,
	})
	return BookModel{
		ID:             b.ID,
		Title:          b.Title,
		Author:         b.Author,
		Description:    b.Description,
		Keywords:       b.Keywords,
		Classification: b.Classification,
		Summary:        b.Summary,
		ContentKey:     b.ContentKey,
		ScrapedFields:  scraped,
		CreatedAt:      b.CreatedAt,
	}
}

func bookFromModel(m BookModel) domain.Book {
	return domain.Book{
		ID:             m.ID,
		Title:          m.Title,
		Author:         m.Author,
		Description:    m.Description,
		Keywords:       m.Keywords,
		Classification: m.Classification,
		Summary:        m.Summary,
		ContentKey:     m.ContentKey,
		CreatedAt:      m.CreatedAt,
	}
}
