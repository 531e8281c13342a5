package middleware

import (
	"net/http"
	"strings"

	"github.com/Alden-Crist/Planzee/internal/domain"
	"github.com/Alden-Crist/Planzee/internal/service"

	"github.com/gin-gonic/gin"
)

// Auth extracts and verifies the bearer token and stores the resolved user
// id under "user_id". Protected handlers never run without a verified
// identity. The gate holds no state across requests.
func Auth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			AuthFailures.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrMissingToken.Error()})
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			AuthFailures.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
