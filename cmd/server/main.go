package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"taskhub/internal/config"
	"taskhub/internal/handlers"
	"taskhub/internal/repositories"
	"taskhub/internal/services"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repositories.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	cancel()

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	noteRepo := repositories.NewNoteRepository(db)
	taskRepo := repositories.NewTaskRepository(db)

	categoryService := services.NewCategoryService(categoryRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, categoryService)
	noteService := services.NewNoteService(noteRepo, categoryService)
	userService := services.NewUserService(userRepo, cfg.Auth.BCryptCost)
	registerService := services.NewRegisterService(userRepo, cfg.Auth.BCryptCost)
	authService := services.NewAuthService(
		userRepo,
		redisClient,
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	router := handlers.NewRouter(cfg, handlers.API{
		Tasks:      handlers.NewTaskHandler(taskService, categoryService),
		Notes:      handlers.NewNoteHandler(noteService, categoryService),
		Categories: handlers.NewCategoryHandler(categoryService),
		Users:      handlers.NewUserHandler(userService),
		Auth:       handlers.NewAuthHandler(authService),
		Register:   handlers.NewRegisterHandler(registerService),
		Refresh:    handlers.NewRefreshHandler(authService),
		Logout:     handlers.NewLogoutHandler(authService),
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}
}
