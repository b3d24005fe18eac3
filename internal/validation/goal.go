package validation

import (
	"errors"
	"time"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidTargetDate   = errors.New("target date must be a valid date (YYYY-MM-DD)")
	ErrTargetDateInPast    = errors.New("target date must not be in the past")
	ErrInvalidStatus       = errors.New("invalid status value")
)

// ValidateDescription requires non-empty free text.
func ValidateDescription(description string) error {
	if description == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// ValidateTargetDate checks the ISO calendar-date format and rejects dates
// before today. "Today" is the process-local calendar date; a goal due today
// is valid at creation.
func ValidateTargetDate(targetDate string, now time.Time) error {
	parsed, err := time.ParseInLocation(model.TargetDateLayout, targetDate, now.Location())
	if err != nil {
		return ErrInvalidTargetDate
	}

	today, _ := time.ParseInLocation(model.TargetDateLayout, now.Format(model.TargetDateLayout), now.Location())
	if parsed.Before(today) {
		return ErrTargetDateInPast
	}

	return nil
}

// ValidateStatus restricts status to the three goal statuses.
func ValidateStatus(status string) error {
	if !model.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return nil
}
