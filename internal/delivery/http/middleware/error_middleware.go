package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-skillstack-backend/internal/delivery/http/response"
	"go-skillstack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// SECURITY: never expose internal error details to clients.
				// Log the actual error server-side, send a generic message.
				reqID, _ := c.Get("RequestID")
				slog.Error("internal server error",
					"error", err,
					"path", c.FullPath(),
					"request_id", reqID,
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
