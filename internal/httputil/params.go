package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Order listing page bounds.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// ParsePagination reads the offset and limit query parameters, defaulting to 0 and
// DefaultPageLimit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageLimit)))
	if err != nil || limit < 1 || limit > MaxPageLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", MaxPageLimit)
	}

	return offset, limit, nil
}

// ParseIDParam parses the positive order, product or payment id in path parameter name.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	return parsePositiveID(name, c.Param(name))
}

// ParseOptionalIDQuery parses an optional positive id query parameter, returning nil
// when it is absent or empty.
func ParseOptionalIDQuery(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	id, err := parsePositiveID(name, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parsePositiveID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: must be a positive integer", name)
	}
	return id, nil
}
