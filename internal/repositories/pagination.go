package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// Items-per-page constants, fixed per listing.
const (
	TaskPageSize     = 10
	NotePageSize     = 5
	CategoryPageSize = 10
)

// Page is one slice of an ordered result set plus count metadata.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
	Page       int   `json:"page"`
}

// Paginate executes a lazy query as one bounded count plus one bounded
// fetch. Page numbers below 1 are clamped to the first page; a page past
// the end yields an empty item slice with the totals still populated.
func Paginate[T any](query *gorm.DB, page, perPage int) (*Page[T], error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count page: %w", err)
	}

	items := make([]T, 0, perPage)
	offset := (page - 1) * perPage
	if err := query.Offset(offset).Limit(perPage).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &Page[T]{
		Items:      items,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
	}, nil
}
