package model

import (
	"time"
)

const (
	GoalStatusPending    = "pending"
	GoalStatusCompleted  = "completed"
	GoalStatusIncomplete = "incomplete"
)

// TargetDateLayout is the calendar-date format used for goal due dates.
// Target dates carry no time component.
const TargetDateLayout = "2006-01-02"

type Goal struct {
	ID          string    `db:"id" json:"id"`
	UserEmail   string    `db:"user_email" json:"user_email"`
	Description string    `db:"description" json:"description"`
	TargetDate  string    `db:"target_date" json:"target_date"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ValidStatus reports whether s is one of the three goal statuses.
func ValidStatus(s string) bool {
	switch s {
	case GoalStatusPending, GoalStatusCompleted, GoalStatusIncomplete:
		return true
	}
	return false
}
