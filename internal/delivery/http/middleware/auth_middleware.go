package middleware

import (
	"net/http"
	"strings"

	"go-skillstack-backend/internal/delivery/http/response"
	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and stores the caller's
// identity on the context for downstream handlers.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Bearer token required", nil)
			c.Abort()
			return
		}

		userID, email, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserEmail), email)

		c.Next()
	}
}
