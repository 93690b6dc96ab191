package domain

import (
	"time"

	"github.com/smallbiznis/gridplant/pkg/dates"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// WorkOrder is a maintenance task tied to exactly one asset. The
// (asset_id, title) pair is unique system-wide.
type WorkOrder struct {
	ID             int64       `gorm:"primaryKey" json:"id"`
	AssetID        int64       `gorm:"column:asset_id;not null;index;uniqueIndex:ux_work_orders_asset_title,priority:1" json:"asset_id"`
	Title          string      `gorm:"type:varchar(120);not null;uniqueIndex:ux_work_orders_asset_title,priority:2" json:"title"`
	Description    *string     `gorm:"type:text" json:"description"`
	Status         Status      `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	Priority       Priority    `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	ScheduledStart *dates.Date `gorm:"column:scheduled_start;type:date" json:"scheduled_start"`
	ScheduledEnd   *dates.Date `gorm:"column:scheduled_end;type:date" json:"scheduled_end"`
	CompletedAt    *time.Time  `gorm:"column:completed_at" json:"completed_at"`
	CreatedAt      time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (WorkOrder) TableName() string { return "work_orders" }

// Summary is the lightweight shape embedded in asset responses.
type Summary struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`
}

func Summarize(w WorkOrder) Summary {
	return Summary{
		ID:       w.ID,
		Title:    w.Title,
		Status:   w.Status,
		Priority: w.Priority,
	}
}
