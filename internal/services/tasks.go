package services

import (
	"context"
	"errors"
	"time"

	"taskhub/internal/models"
	"taskhub/internal/repositories"

	"gorm.io/gorm"
)

// RawFilters carries filter ids exactly as they came off the query string,
// before resolution to entities. A zero id means the filter is absent.
type RawFilters struct {
	CategoryID uint
}

type TaskService interface {
	GetPaginatedList(ctx context.Context, page int, raw RawFilters) (*repositories.Page[models.Task], error)
	PrepareFilters(ctx context.Context, raw RawFilters) (repositories.TaskFilters, error)
	FindOneByID(ctx context.Context, id uint) (*models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, task *models.Task) error
}

type TaskServiceImpl struct {
	taskRepo        *repositories.TaskRepository
	categoryService CategoryService
}

func NewTaskService(taskRepo *repositories.TaskRepository, categoryService CategoryService) *TaskServiceImpl {
	return &TaskServiceImpl{taskRepo: taskRepo, categoryService: categoryService}
}

// PrepareFilters resolves raw ids into entity filters. A category id that
// does not resolve is dropped silently: a stale filter must never fail the
// whole listing.
func (s *TaskServiceImpl) PrepareFilters(ctx context.Context, raw RawFilters) (repositories.TaskFilters, error) {
	var filters repositories.TaskFilters
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

func (s *TaskServiceImpl) GetPaginatedList(ctx context.Context, page int, raw RawFilters) (*repositories.Page[models.Task], error) {
	filters, err := s.PrepareFilters(ctx, raw)
	if err != nil {
		return nil, err
	}

	return repositories.Paginate[models.Task](
		s.taskRepo.QueryAll(ctx, filters),
		page,
		repositories.TaskPageSize,
	)
}

func (s *TaskServiceImpl) FindOneByID(ctx context.Context, id uint) (*models.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskServiceImpl) Save(ctx context.Context, task *models.Task) error {
	now := time.Now()
	if task.ID == 0 {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	return s.taskRepo.Save(ctx, task)
}

func (s *TaskServiceImpl) Delete(ctx context.Context, task *models.Task) error {
	return s.taskRepo.Delete(ctx, task)
}
