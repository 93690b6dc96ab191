package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	assetdomain "github.com/smallbiznis/gridplant/internal/asset/domain"
	"github.com/smallbiznis/gridplant/internal/validation"
	workorderdomain "github.com/smallbiznis/gridplant/internal/workorder/domain"
)

// errorResponse is the single error envelope: detail is a plain string
// for lookup and conflict failures, and a list of field errors for
// validation failures.
type errorResponse struct {
	Detail any `json:"detail"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, detail := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Detail: detail})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, any) {
	var vErr *validation.Errors
	if errors.As(err, &vErr) && vErr != nil {
		return http.StatusUnprocessableEntity, vErr.Fields
	}

	switch {
	case errors.Is(err, assetdomain.ErrNotFound):
		return http.StatusNotFound, "Asset not found"
	case errors.Is(err, workorderdomain.ErrNotFound):
		return http.StatusNotFound, "Work order not found"
	case errors.Is(err, workorderdomain.ErrAssetNotFound):
		return http.StatusNotFound, "Related asset not found"
	case errors.Is(err, assetdomain.ErrDuplicateName):
		return http.StatusConflict, "Asset with this name already exists"
	case errors.Is(err, workorderdomain.ErrDuplicateTitle):
		return http.StatusConflict, "Work order with this title already exists for the asset"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func classifyErrorForLog(err error) (string, string) {
	var vErr *validation.Errors
	if errors.As(err, &vErr) && vErr != nil {
		code := ""
		if len(vErr.Fields) > 0 {
			code = vErr.Fields[0].Field
		}
		return "validation_error", code
	}

	switch {
	case errors.Is(err, assetdomain.ErrNotFound),
		errors.Is(err, workorderdomain.ErrNotFound),
		errors.Is(err, workorderdomain.ErrAssetNotFound):
		return "not_found", err.Error()
	case errors.Is(err, assetdomain.ErrDuplicateName),
		errors.Is(err, workorderdomain.ErrDuplicateTitle):
		return "conflict", err.Error()
	default:
		return "internal_error", ""
	}
}
