package v1

import (
	"strconv"

	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter, recording a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}
