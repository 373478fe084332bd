package repositories

import (
	"context"
	"fmt"

	"taskhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// QueryAll mirrors the task listing: id-ascending base query, optionally
// narrowed to one category.
func (r *NoteRepository) QueryAll(ctx context.Context, filters NoteFilters) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Preload("Category").
		Order("notes.id ASC")

	if filters.Category != nil {
		query = query.Where("category_id = ?", filters.Category.ID)
	}

	return query
}

func (r *NoteRepository) FindByID(ctx context.Context, id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).Preload("Category").First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) Save(ctx context.Context, note *models.Note) error {
	db := r.db.WithContext(ctx).Omit(clause.Associations)
	if note.ID == 0 {
		if err := db.Create(note).Error; err != nil {
			return fmt.Errorf("create note: %w", err)
		}
		return nil
	}
	// Select("*") keeps nil content writes: gorm would otherwise skip the
	// zero-valued pointer column and a cleared body would survive the save.
	if err := db.Select("*").Save(note).Error; err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, note *models.Note) error {
	result := r.db.WithContext(ctx).Delete(&models.Note{}, note.ID)
	if result.Error != nil {
		return fmt.Errorf("delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
