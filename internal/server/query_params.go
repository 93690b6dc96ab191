package server

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	assetdomain "github.com/smallbiznis/gridplant/internal/asset/domain"
	"github.com/smallbiznis/gridplant/internal/validation"
	workorderdomain "github.com/smallbiznis/gridplant/internal/workorder/domain"
)

const (
	limitMin = 1
	limitMax = 100

	searchMinLen = 2
	searchMaxLen = 100
)

func parseIDParam(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.New(name, "must be a positive integer")
	}
	return id, nil
}

// parsePagination validates skip and limit without applying defaults;
// the services normalize a zero limit to the configured page size.
func parsePagination(c *gin.Context) (int, int, error) {
	skip := 0
	if raw := strings.TrimSpace(c.Query("skip")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, validation.New("skip", "must be greater than or equal to 0")
		}
		skip = v
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < limitMin || v > limitMax {
			return 0, 0, validation.Newf("limit", "must be between %d and %d", limitMin, limitMax)
		}
		limit = v
	}

	return skip, limit, nil
}

func parseAssetStatusQuery(c *gin.Context) (assetdomain.Status, error) {
	raw := strings.TrimSpace(c.Query("status"))
	if raw == "" {
		return "", nil
	}
	status := assetdomain.Status(raw)
	if !status.Valid() {
		return "", validation.New("status", "must be one of active, inactive, maintenance, decommissioned")
	}
	return status, nil
}

func parseSearchQuery(c *gin.Context) (string, error) {
	raw := c.Query("search")
	if raw == "" {
		return "", nil
	}
	if n := utf8.RuneCountInString(raw); n < searchMinLen || n > searchMaxLen {
		return "", validation.Newf("search", "must be between %d and %d characters", searchMinLen, searchMaxLen)
	}
	return raw, nil
}

func parseWorkOrderStatusQuery(c *gin.Context) (workorderdomain.Status, error) {
	raw := strings.TrimSpace(c.Query("status"))
	if raw == "" {
		return "", nil
	}
	status := workorderdomain.Status(raw)
	if !status.Valid() {
		return "", validation.New("status", "must be one of open, in_progress, completed, cancelled")
	}
	return status, nil
}

func parseWorkOrderPriorityQuery(c *gin.Context) (workorderdomain.Priority, error) {
	raw := strings.TrimSpace(c.Query("priority"))
	if raw == "" {
		return "", nil
	}
	priority := workorderdomain.Priority(raw)
	if !priority.Valid() {
		return "", validation.New("priority", "must be one of low, medium, high, critical")
	}
	return priority, nil
}

func parseAssetIDQuery(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Query("asset_id"))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.New("asset_id", "must be a positive integer")
	}
	return id, nil
}
