package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/taskhive-api/internal/constants"
)

// ParseLimit extracts and validates a "limit" query parameter, falling
// back to def when absent or out of range.
func ParseLimit(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil {
		return def
	}
	if limit < 1 || limit > constants.MaxListLimit {
		return def
	}
	return limit
}
