package v1

import (
	"strconv"
	"strings"

	"go-skillstack-backend/pkg/apperror"
	"go-skillstack-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// bindError turns a ShouldBindJSON failure into a 400 with readable,
// per-field messages instead of the validator's raw output.
func bindError(err error) *apperror.AppError {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}

// pathID parses the numeric :id path segment.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid ID parameter")
	}
	return id, nil
}

// toPtr converts an empty string to a nil pointer so optional text
// columns stay NULL instead of storing "".
func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
