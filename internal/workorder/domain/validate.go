package domain

import (
	"unicode/utf8"

	"github.com/smallbiznis/gridplant/internal/validation"
	"github.com/smallbiznis/gridplant/pkg/dates"
)

const (
	titleMinLen       = 3
	titleMaxLen       = 120
	descriptionMaxLen = 10000
)

// Validate checks the fully merged record. Create and update both run
// through it, so cross-field temporal rules see existing and patched
// values together.
func Validate(w *WorkOrder) error {
	errs := &validation.Errors{}

	if n := utf8.RuneCountInString(w.Title); n < titleMinLen || n > titleMaxLen {
		errs.Addf("title", "must be between %d and %d characters", titleMinLen, titleMaxLen)
	}
	if w.Description != nil && utf8.RuneCountInString(*w.Description) > descriptionMaxLen {
		errs.Addf("description", "must be at most %d characters", descriptionMaxLen)
	}
	if !w.Status.Valid() {
		errs.Add("status", "must be one of open, in_progress, completed, cancelled")
	}
	if !w.Priority.Valid() {
		errs.Add("priority", "must be one of low, medium, high, critical")
	}

	if w.ScheduledStart != nil && w.ScheduledEnd != nil && w.ScheduledEnd.Before(*w.ScheduledStart) {
		errs.Add("scheduled_end", "cannot be before scheduled_start")
	}
	if w.ScheduledStart != nil && w.CompletedAt != nil &&
		dates.FromTime(*w.CompletedAt).Before(*w.ScheduledStart) {
		errs.Add("completed_at", "cannot be before scheduled_start")
	}

	return errs.Err()
}
