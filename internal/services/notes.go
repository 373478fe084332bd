package services

import (
	"context"
	"errors"
	"time"

	"taskhub/internal/models"
	"taskhub/internal/repositories"

	"gorm.io/gorm"
)

type NoteService interface {
	GetPaginatedList(ctx context.Context, page int, raw RawFilters) (*repositories.Page[models.Note], error)
	FindOneByID(ctx context.Context, id uint) (*models.Note, error)
	Save(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, note *models.Note) error
}

type NoteServiceImpl struct {
	noteRepo        *repositories.NoteRepository
	categoryService CategoryService
}

func NewNoteService(noteRepo *repositories.NoteRepository, categoryService CategoryService) *NoteServiceImpl {
	return &NoteServiceImpl{noteRepo: noteRepo, categoryService: categoryService}
}

func (s *NoteServiceImpl) GetPaginatedList(ctx context.Context, page int, raw RawFilters) (*repositories.Page[models.Note], error) {
	filters, err := s.prepareFilters(ctx, raw)
	if err != nil {
		return nil, err
	}

	return repositories.Paginate[models.Note](
		s.noteRepo.QueryAll(ctx, filters),
		page,
		repositories.NotePageSize,
	)
}

func (s *NoteServiceImpl) FindOneByID(ctx context.Context, id uint) (*models.Note, error) {
	return s.noteRepo.FindByID(ctx, id)
}

func (s *NoteServiceImpl) Save(ctx context.Context, note *models.Note) error {
	now := time.Now()
	if note.ID == 0 {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	return s.noteRepo.Save(ctx, note)
}

func (s *NoteServiceImpl) Delete(ctx context.Context, note *models.Note) error {
	return s.noteRepo.Delete(ctx, note)
}

// prepareFilters follows the task listing policy: an unresolvable category
// id is dropped, never an error.
func (s *NoteServiceImpl) prepareFilters(ctx context.Context, raw RawFilters) (repositories.NoteFilters, error) {
	var filters repositories.NoteFilters
	if raw.CategoryID == 0 {
		return filters, nil
	}

	category, err := s.categoryService.FindOneByID(ctx, raw.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return filters, nil
		}
		return filters, err
	}

	filters.Category = category
	return filters, nil
}
