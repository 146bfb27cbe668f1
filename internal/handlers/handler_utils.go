package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. A non-numeric id is a malformed
// request, not a missing record.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts the plain form date (2006-01-02) as well as a full
// RFC 3339 timestamp, which is what the browser sends when the date field
// is left on "today".
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
