package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/panvault/internal/errors"
)

// Pagination defaults for list endpoints.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ParsePagination safely parses and validates offset and limit query parameters.
// Offset defaults to 0 and limit to DefaultLimit; limit cannot exceed MaxLimit.
// Errors wrap ErrInvalidInput.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, "offset must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, 0, apperrors.Wrapf(apperrors.ErrInvalidInput, "limit must be between 1 and %d", MaxLimit)
	}

	return offset, limit, nil
}
