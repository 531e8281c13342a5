package handlers

import (
	"errors"
	"net/http"

	"github.com/Alden-Crist/Planzee/internal/domain"
	"github.com/Alden-Crist/Planzee/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Users *service.UserService
	Tasks *service.TaskService
}

func NewHandler(users *service.UserService, tasks *service.TaskService) *Handler {
	return &Handler{Users: users, Tasks: tasks}
}

// getUserID reads the identity the auth middleware resolved for this request.
func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	uid, ok := uidVal.(int64)
	return uid, ok
}

// writeError maps a domain error onto exactly one status code.
func writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var authErr *domain.AuthError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Reason})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// userSummary is the outward shape of a user; the password hash never
// serializes.
func userSummary(u *domain.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}
