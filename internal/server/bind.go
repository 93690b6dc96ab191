package server

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/gridplant/internal/validation"
)

// bindStrictJSON decodes the request body rejecting unknown fields, so a
// misspelled field surfaces as a validation failure instead of being
// silently dropped.
func bindStrictJSON(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return validation.New("body", err.Error())
	}
	if dec.More() {
		return validation.New("body", "unexpected data after JSON body")
	}
	return nil
}
