package services_test

import (
	"context"
	"testing"

	"taskhub/internal/models"
	"taskhub/internal/repositories"
	"taskhub/internal/services"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repositories.AutoMigrate(db))

	return db
}

type testEnv struct {
	db              *gorm.DB
	categoryService *services.CategoryServiceImpl
	taskService     *services.TaskServiceImpl
	noteService     *services.NoteServiceImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	categoryRepo := repositories.NewCategoryRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	noteRepo := repositories.NewNoteRepository(db)

	categoryService := services.NewCategoryService(categoryRepo, taskRepo)

	return &testEnv{
		db:              db,
		categoryService: categoryService,
		taskService:     services.NewTaskService(taskRepo, categoryService),
		noteService:     services.NewNoteService(noteRepo, categoryService),
	}
}

func (e *testEnv) mustCreateUser(t *testing.T, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "hashed",
		Roles:    models.Roles{models.RoleUser},
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) mustCreateCategory(t *testing.T, title string) *models.Category {
	t.Helper()

	category := &models.Category{Title: title}
	require.NoError(t, e.categoryService.Save(context.Background(), category))
	return category
}
