package handlers

import (
	"errors"
	"net/http"

	"taskhub/internal/models"
	"taskhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NoteHandler struct {
	noteService     services.NoteService
	categoryService services.CategoryService
}

func NewNoteHandler(noteService services.NoteService, categoryService services.CategoryService) *NoteHandler {
	return &NoteHandler{noteService: noteService, categoryService: categoryService}
}

// Content and category are both optional; a null content clears the body.
type noteInput struct {
	Title      string  `json:"title" binding:"required"`
	Content    *string `json:"content"`
	CategoryID *uint   `json:"category_id"`
}

func (h *NoteHandler) resolveCategory(c *gin.Context, categoryID *uint) bool {
	if categoryID == nil {
		return true
	}
	if _, err := h.categoryService.FindOneByID(c.Request.Context(), *categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return false
		}
		handleServiceError(c, err)
		return false
	}
	return true
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	page := parsePage(c)
	raw := parseRawFilters(c)

	result, err := h.noteService.GetPaginatedList(c.Request.Context(), page, raw)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *NoteHandler) GetNoteByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var input noteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.resolveCategory(c, input.CategoryID) {
		return
	}

	note := models.Note{
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
	}
	if err := h.noteService.Save(c.Request.Context(), &note); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var input noteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.resolveCategory(c, input.CategoryID) {
		return
	}

	note.Title = input.Title
	note.Content = input.Content
	note.CategoryID = input.CategoryID
	if err := h.noteService.Save(c.Request.Context(), note); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), note); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
