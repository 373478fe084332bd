package services

import (
	"context"
	"time"

	"taskhub/internal/models"
	"taskhub/internal/repositories"
)

type CategoryService interface {
	GetPaginatedList(ctx context.Context, page int) (*repositories.Page[models.Category], error)
	FindOneByID(ctx context.Context, id uint) (*models.Category, error)
	Save(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, category *models.Category) error
	CanBeDeleted(ctx context.Context, category *models.Category) (bool, error)
}

type CategoryServiceImpl struct {
	categoryRepo *repositories.CategoryRepository
	taskRepo     *repositories.TaskRepository
}

func NewCategoryService(categoryRepo *repositories.CategoryRepository, taskRepo *repositories.TaskRepository) *CategoryServiceImpl {
	return &CategoryServiceImpl{categoryRepo: categoryRepo, taskRepo: taskRepo}
}

func (s *CategoryServiceImpl) GetPaginatedList(ctx context.Context, page int) (*repositories.Page[models.Category], error) {
	return repositories.Paginate[models.Category](
		s.categoryRepo.QueryAll(ctx),
		page,
		repositories.CategoryPageSize,
	)
}

func (s *CategoryServiceImpl) FindOneByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// Save stamps created_at exactly once, on first save, and refreshes
// updated_at on every save.
func (s *CategoryServiceImpl) Save(ctx context.Context, category *models.Category) error {
	now := time.Now()
	if category.ID == 0 {
		category.CreatedAt = now
	}
	category.UpdatedAt = now

	return s.categoryRepo.Save(ctx, category)
}

// CanBeDeleted is false while at least one task references the category.
func (s *CategoryServiceImpl) CanBeDeleted(ctx context.Context, category *models.Category) (bool, error) {
	count, err := s.taskRepo.CountByCategory(ctx, category.ID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Delete refuses to remove a category that still has tasks; the rejection
// is an ErrCategoryInUse the caller reports, not a store-level failure.
func (s *CategoryServiceImpl) Delete(ctx context.Context, category *models.Category) error {
	deletable, err := s.CanBeDeleted(ctx, category)
	if err != nil {
		return err
	}
	if !deletable {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(ctx, category)
}
