package http

import (
	"github.com/Alden-Crist/Planzee/internal/config"
	"github.com/Alden-Crist/Planzee/internal/http/handlers"
	"github.com/Alden-Crist/Planzee/internal/http/middleware"
	"github.com/Alden-Crist/Planzee/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API surface. Ownership enforcement happens in the
// service layer; the routes only decide which endpoints require a verified
// identity.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, health *handlers.HealthHandler, tokens *service.TokenService, cfg *config.Config) {
	r.Use(middleware.Metrics())

	// Health checks (no rate limiting)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)

	auth := middleware.Auth(tokens)

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	// Credential endpoints get a tighter window.
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)

	user := api.Group("/user")
	{
		user.POST("/register", authRL, h.Register)
		user.POST("/login", authRL, h.Login)
		user.GET("/me", auth, h.Me)
		user.PUT("/profile", auth, h.UpdateProfile)
		user.PUT("/password", auth, h.UpdatePassword)
	}

	tasks := api.Group("/tasks")
	tasks.Use(auth)
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
