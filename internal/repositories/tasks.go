package repositories

import (
	"context"
	"fmt"

	"taskhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskRepository owns the task lifecycle: query construction, upsert and
// delete. Nothing here executes a listing query; that is the paginator's job.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// QueryAll builds the base listing query, ordered by id ascending so
// pagination stays deterministic, narrowed by the category filter when one
// was resolved. The returned query is unexecuted.
func (r *TaskRepository) QueryAll(ctx context.Context, filters TaskFilters) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Preload("Category").
		Preload("Author").
		Order("tasks.id ASC")

	if filters.Category != nil {
		query = query.Where("category_id = ?", filters.Category.ID)
	}

	return query
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Author").
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Save inserts when the task has no identity yet, otherwise updates in
// place. Associations are left untouched so edits can never rewrite the
// category or author rows themselves.
func (r *TaskRepository) Save(ctx context.Context, task *models.Task) error {
	db := r.db.WithContext(ctx).Omit(clause.Associations)
	if task.ID == 0 {
		if err := db.Create(task).Error; err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		return nil
	}
	if err := db.Save(task).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, task.ID)
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByCategory backs the referential guard on category deletion.
func (r *TaskRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
