package repositories

import (
	"context"
	"fmt"

	"taskhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) QueryAll(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Category{}).
		Order("categories.id ASC")
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Save(ctx context.Context, category *models.Category) error {
	db := r.db.WithContext(ctx).Omit(clause.Associations)
	if category.ID == 0 {
		if err := db.Create(category).Error; err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	}
	if err := db.Save(category).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, category *models.Category) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, category.ID)
	if result.Error != nil {
		return fmt.Errorf("delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
