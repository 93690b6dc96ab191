package domain

import (
	"unicode/utf8"

	"github.com/smallbiznis/gridplant/internal/validation"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 100
	categoryMinLen = 2
	categoryMaxLen = 50
	locationMinLen = 2
	locationMaxLen = 100
)

// Validate checks the fully merged record; create and update share it.
func Validate(a *Asset) error {
	errs := &validation.Errors{}

	if n := utf8.RuneCountInString(a.Name); n < nameMinLen || n > nameMaxLen {
		errs.Addf("name", "must be between %d and %d characters", nameMinLen, nameMaxLen)
	}
	if n := utf8.RuneCountInString(a.Category); n < categoryMinLen || n > categoryMaxLen {
		errs.Addf("category", "must be between %d and %d characters", categoryMinLen, categoryMaxLen)
	}
	if !a.Status.Valid() {
		errs.Add("status", "must be one of active, inactive, maintenance, decommissioned")
	}
	if n := utf8.RuneCountInString(a.Location); n < locationMinLen || n > locationMaxLen {
		errs.Addf("location", "must be between %d and %d characters", locationMinLen, locationMaxLen)
	}
	if a.CapacityMW <= 0 {
		errs.Add("capacity_mw", "must be greater than 0")
	}
	if a.InstalledAt.IsZero() {
		errs.Add("installed_at", "is required")
	}

	return errs.Err()
}
