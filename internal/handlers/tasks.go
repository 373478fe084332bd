package handlers

import (
	"errors"
	"net/http"

	"taskhub/internal/middleware"
	"taskhub/internal/models"
	"taskhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskHandler struct {
	taskService     services.TaskService
	categoryService services.CategoryService
}

func NewTaskHandler(taskService services.TaskService, categoryService services.CategoryService) *TaskHandler {
	return &TaskHandler{taskService: taskService, categoryService: categoryService}
}

type taskInput struct {
	Title      string `json:"title" binding:"required"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	page := parsePage(c)
	raw := parseRawFilters(c)

	result, err := h.taskService.GetPaginatedList(c.Request.Context(), page, raw)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if decision := services.AuthorizeTask(services.ActionView, task, actor); !decision.Allowed {
		forbid(c, decision)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The category must exist before the store sees the task; a stale id is
	// a validation failure here, not a foreign-key fault later.
	if _, err := h.categoryService.FindOneByID(c.Request.Context(), input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		handleServiceError(c, err)
		return
	}

	task := models.Task{
		Title:      input.Title,
		CategoryID: input.CategoryID,
		AuthorID:   actor.ID,
	}
	if err := h.taskService.Save(c.Request.Context(), &task); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if decision := services.AuthorizeTask(services.ActionEdit, task, actor); !decision.Allowed {
		forbid(c, decision)
		return
	}

	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.categoryService.FindOneByID(c.Request.Context(), input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		handleServiceError(c, err)
		return
	}

	// Author stays fixed; edits only touch title and category.
	task.Title = input.Title
	task.CategoryID = input.CategoryID
	if err := h.taskService.Save(c.Request.Context(), task); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if decision := services.AuthorizeTask(services.ActionDelete, task, actor); !decision.Allowed {
		forbid(c, decision)
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), task); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
