package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskhub/internal/handlers"
	"taskhub/internal/models"
	"taskhub/internal/repositories"
	"taskhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MockTaskService struct {
	shouldReturnError bool
	returnNotFound    bool
	tasks             []models.Task
	deleted           []uint
}

func (m *MockTaskService) GetPaginatedList(ctx context.Context, page int, raw services.RawFilters) (*repositories.Page[models.Task], error) {
	if m.shouldReturnError {
		return nil, gorm.ErrInvalidData
	}
	return &repositories.Page[models.Task]{
		Items:      m.tasks,
		TotalCount: int64(len(m.tasks)),
		TotalPages: 1,
		Page:       page,
	}, nil
}

func (m *MockTaskService) PrepareFilters(ctx context.Context, raw services.RawFilters) (repositories.TaskFilters, error) {
	return repositories.TaskFilters{}, nil
}

func (m *MockTaskService) FindOneByID(ctx context.Context, id uint) (*models.Task, error) {
	if m.shouldReturnError {
		return nil, gorm.ErrInvalidData
	}
	if m.returnNotFound {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return &m.tasks[i], nil
		}
	}
	return &models.Task{ID: id, Title: "Test Task", CategoryID: 1, AuthorID: 1}, nil
}

func (m *MockTaskService) Save(ctx context.Context, task *models.Task) error {
	if m.shouldReturnError {
		return gorm.ErrInvalidData
	}
	if task.ID == 0 {
		task.ID = uint(len(m.tasks) + 1)
	}
	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *MockTaskService) Delete(ctx context.Context, task *models.Task) error {
	if m.shouldReturnError {
		return gorm.ErrInvalidData
	}
	m.deleted = append(m.deleted, task.ID)
	return nil
}

type MockCategoryService struct {
	missing bool
}

func (m *MockCategoryService) GetPaginatedList(ctx context.Context, page int) (*repositories.Page[models.Category], error) {
	return &repositories.Page[models.Category]{Page: page}, nil
}

func (m *MockCategoryService) FindOneByID(ctx context.Context, id uint) (*models.Category, error) {
	if m.missing {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Category{ID: id, Title: "Test Category"}, nil
}

func (m *MockCategoryService) Save(ctx context.Context, category *models.Category) error { return nil }

func (m *MockCategoryService) Delete(ctx context.Context, category *models.Category) error {
	return nil
}

func (m *MockCategoryService) CanBeDeleted(ctx context.Context, category *models.Category) (bool, error) {
	return true, nil
}

func setupTaskHandler(actorID uint, roles models.Roles) (*handlers.TaskHandler, *MockTaskService, *MockCategoryService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	mockTasks := &MockTaskService{}
	mockCategories := &MockCategoryService{}
	handler := handlers.NewTaskHandler(mockTasks, mockCategories)
	router := gin.New()

	// Stand-in for the JWT middleware.
	router.Use(func(c *gin.Context) {
		c.Set("user_id", actorID)
		c.Set("user_roles", roles)
		c.Next()
	})

	return handler, mockTasks, mockCategories, router
}

func TestCreateTask(t *testing.T) {
	handler, mockTasks, _, router := setupTaskHandler(1, models.Roles{models.RoleUser})
	router.POST("/tasks", handler.CreateTask)

	body, _ := json.Marshal(map[string]interface{}{"title": "Test Task", "category_id": 1})
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status %d, got %d", http.StatusCreated, w.Code)
	}

	if len(mockTasks.tasks) != 1 {
		t.Fatalf("Expected 1 saved task, got %d", len(mockTasks.tasks))
	}
	if mockTasks.tasks[0].AuthorID != 1 {
		t.Errorf("Expected author 1, got %d", mockTasks.tasks[0].AuthorID)
	}
}

func TestCreateTaskUnknownCategory(t *testing.T) {
	handler, _, mockCategories, router := setupTaskHandler(1, models.Roles{models.RoleUser})
	router.POST("/tasks", handler.CreateTask)

	mockCategories.missing = true

	body, _ := json.Marshal(map[string]interface{}{"title": "Test Task", "category_id": 42})
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateTaskInvalidJSON(t *testing.T) {
	handler, _, _, router := setupTaskHandler(1, models.Roles{models.RoleUser})
	router.POST("/tasks", handler.CreateTask)

	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestGetTaskByID(t *testing.T) {
	handler, _, _, router := setupTaskHandler(1, models.Roles{models.RoleUser})
	router.GET("/tasks/:id", handler.GetTaskByID)

	req, _ := http.NewRequest("GET", "/tasks/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var task models.Task
	if err := json.Unmarshal(w.Body.Bytes(), &task); err != nil {
		t.Errorf("Failed to unmarshal response: %v", err)
	}
	if task.Title != "Test Task" {
		t.Errorf("Expected title 'Test Task', got '%s'", task.Title)
	}
}

func TestGetTaskByIDNotFound(t *testing.T) {
	handler, mockTasks, _, router := setupTaskHandler(1, models.Roles{models.RoleUser})
	router.GET("/tasks/:id", handler.GetTaskByID)

	mockTasks.returnNotFound = true

	req, _ := http.NewRequest("GET", "/tasks/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGetTasksPaginated(t *testing.T) {
	handler, mockTasks, _, router := setupTaskHandler(1, models.Roles{models.RoleUser})
	router.GET("/tasks", handler.GetTasks)

	mockTasks.tasks = []models.Task{
		{ID: 1, Title: "Task 1", CategoryID: 1, AuthorID: 1},
		{ID: 2, Title: "Task 2", CategoryID: 1, AuthorID: 1},
	}

	req, _ := http.NewRequest("GET", "/tasks?page=1&filters_category_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Errorf("Failed to unmarshal response: %v", err)
	}
	if response["total_count"] != float64(2) {
		t.Errorf("Expected total_count 2, got %v", response["total_count"])
	}
}

func TestUpdateTaskForbiddenForStranger(t *testing.T) {
	handler, mockTasks, _, router := setupTaskHandler(2, models.Roles{models.RoleUser})
	router.PUT("/tasks/:id", handler.UpdateTask)

	mockTasks.tasks = []models.Task{{ID: 7, Title: "Owned", CategoryID: 1, AuthorID: 1}}

	body, _ := json.Marshal(map[string]interface{}{"title": "Hijacked", "category_id": 1})
	req, _ := http.NewRequest("PUT", "/tasks/7", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestUpdateTaskKeepsAuthor(t *testing.T) {
	handler, mockTasks, _, router := setupTaskHandler(1, models.Roles{models.RoleUser})
	router.PUT("/tasks/:id", handler.UpdateTask)

	mockTasks.tasks = []models.Task{{ID: 7, Title: "Owned", CategoryID: 1, AuthorID: 1}}

	body, _ := json.Marshal(map[string]interface{}{"title": "Renamed", "category_id": 2})
	req, _ := http.NewRequest("PUT", "/tasks/7", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var task models.Task
	if err := json.Unmarshal(w.Body.Bytes(), &task); err != nil {
		t.Errorf("Failed to unmarshal response: %v", err)
	}
	if task.AuthorID != 1 {
		t.Errorf("Expected author to stay 1, got %d", task.AuthorID)
	}
	if task.Title != "Renamed" {
		t.Errorf("Expected title 'Renamed', got '%s'", task.Title)
	}
}

func TestDeleteTask(t *testing.T) {
	handler, mockTasks, _, router := setupTaskHandler(1, models.Roles{models.RoleUser})
	router.DELETE("/tasks/:id", handler.DeleteTask)

	mockTasks.tasks = []models.Task{{ID: 7, Title: "Owned", CategoryID: 1, AuthorID: 1}}

	req, _ := http.NewRequest("DELETE", "/tasks/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if len(mockTasks.deleted) != 1 || mockTasks.deleted[0] != 7 {
		t.Errorf("Expected task 7 to be deleted, got %v", mockTasks.deleted)
	}
}

func TestDeleteTaskAsAdmin(t *testing.T) {
	handler, mockTasks, _, router := setupTaskHandler(99, models.Roles{models.RoleAdmin})
	router.DELETE("/tasks/:id", handler.DeleteTask)

	mockTasks.tasks = []models.Task{{ID: 7, Title: "Owned", CategoryID: 1, AuthorID: 1}}

	req, _ := http.NewRequest("DELETE", "/tasks/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status %d, got %d", http.StatusNoContent, w.Code)
	}
}
