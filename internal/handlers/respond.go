package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handleServiceError maps the service error taxonomy onto HTTP statuses:
// missing rows are 404, the category referential guard is 409, everything
// else is an unrecoverable store failure.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "category is still referenced by tasks"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process request"})
	}
}

func forbid(c *gin.Context, decision services.Decision) {
	c.JSON(http.StatusForbidden, gin.H{"error": "access denied", "reason": decision.Reason})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parsePage reads the page query parameter, defaulting to the first page.
// Out-of-range values are left to the paginator, which clamps them.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// parseRawFilters picks the raw filter ids off the query string. Invalid or
// absent values read as zero, which the services treat as "no filter".
func parseRawFilters(c *gin.Context) services.RawFilters {
	var raw services.RawFilters
	if value := c.Query("filters_category_id"); value != "" {
		if id, err := strconv.ParseUint(value, 10, 64); err == nil {
			raw.CategoryID = uint(id)
		}
	}
	return raw
}
