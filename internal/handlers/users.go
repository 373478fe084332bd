package handlers

import (
	"net/http"

	"taskhub/internal/middleware"
	"taskhub/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.userService.FindOneByID(c.Request.Context(), actor.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if decision := services.AuthorizeUser(services.ActionView, user, actor); !decision.Allowed {
		forbid(c, decision)
		return
	}

	c.JSON(http.StatusOK, user)
}

type passwordInput struct {
	Password string `json:"password" binding:"required,min=8"`
}

// ChangePassword is restricted to the profile owner or an admin.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if decision := services.AuthorizeUser(services.ActionEdit, user, actor); !decision.Allowed {
		forbid(c, decision)
		return
	}

	var input passwordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), user, input.Password); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated successfully"})
}
