package handlers

import (
	"net/http"

	"taskhub/internal/middleware"
	"taskhub/internal/models"
	"taskhub/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryInput struct {
	Title string `json:"title" binding:"required"`
}

// requireAdmin guards category mutations; categories are shared between
// users, so only admins shape them.
func requireAdmin(c *gin.Context) (*models.User, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}
	if !actor.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied", "reason": "admin role required"})
		return nil, false
	}
	return actor, true
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	page := parsePage(c)

	result, err := h.categoryService.GetPaginatedList(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{Title: input.Title}
	if err := h.categoryService.Save(c.Request.Context(), &category); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category.Title = input.Title
	if err := h.categoryService.Save(c.Request.Context(), category); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), category); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
