package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alden-Crist/Planzee/internal/config"
	"github.com/Alden-Crist/Planzee/internal/db"
	httpServer "github.com/Alden-Crist/Planzee/internal/http"
	"github.com/Alden-Crist/Planzee/internal/http/handlers"
	"github.com/Alden-Crist/Planzee/internal/http/middleware"
	"github.com/Alden-Crist/Planzee/internal/logger"
	"github.com/Alden-Crist/Planzee/internal/repository"
	"github.com/Alden-Crist/Planzee/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "1.2.0"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	users := service.NewUserService(repository.NewUserRepository(pool), hasher, tokens)
	tasks := service.NewTaskService(repository.NewTaskRepository(pool))

	r := gin.Default()

	// CORS for the frontend on a different origin
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := handlers.NewHandler(users, tasks)
	health := handlers.NewHealthHandler(pool, version)
	httpServer.RegisterRoutes(r, h, health, tokens, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
