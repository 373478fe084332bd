package handlers

import (
	"taskhub/internal/config"
	"taskhub/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// API bundles the handlers the router wires up.
type API struct {
	Tasks      *TaskHandler
	Notes      *NoteHandler
	Categories *CategoryHandler
	Users      *UserHandler
	Auth       *AuthHandler
	Register   *RegisterHandler
	Refresh    *RefreshHandler
	Logout     *LogoutHandler
}

func NewRouter(cfg *config.Config, api API) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit))

	auth := router.Group("/auth")
	{
		auth.POST("/register", api.Register.Registration)
		auth.POST("/login", api.Auth.Login)
		auth.POST("/refresh", api.Refresh.Refresh)
		auth.POST("/logout", api.Logout.Logout)
	}

	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
	{
		authorized.GET("/tasks", api.Tasks.GetTasks)
		authorized.GET("/tasks/:id", api.Tasks.GetTaskByID)
		authorized.POST("/tasks", api.Tasks.CreateTask)
		authorized.PUT("/tasks/:id", api.Tasks.UpdateTask)
		authorized.DELETE("/tasks/:id", api.Tasks.DeleteTask)

		authorized.GET("/notes", api.Notes.GetNotes)
		authorized.GET("/notes/:id", api.Notes.GetNoteByID)
		authorized.POST("/notes", api.Notes.CreateNote)
		authorized.PUT("/notes/:id", api.Notes.UpdateNote)
		authorized.DELETE("/notes/:id", api.Notes.DeleteNote)

		authorized.GET("/categories", api.Categories.GetCategories)
		authorized.GET("/categories/:id", api.Categories.GetCategoryByID)
		authorized.POST("/categories", api.Categories.CreateCategory)
		authorized.PUT("/categories/:id", api.Categories.UpdateCategory)
		authorized.DELETE("/categories/:id", api.Categories.DeleteCategory)

		authorized.GET("/users/me", api.Users.GetProfile)
		authorized.GET("/users/:id", api.Users.GetUserByID)
		authorized.PUT("/users/:id/password", api.Users.ChangePassword)
	}

	return router
}
