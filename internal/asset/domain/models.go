package domain

import (
	"time"

	workorderdomain "github.com/smallbiznis/gridplant/internal/workorder/domain"
	"github.com/smallbiznis/gridplant/pkg/dates"
)

type Status string

const (
	StatusActive         Status = "active"
	StatusInactive       Status = "inactive"
	StatusMaintenance    Status = "maintenance"
	StatusDecommissioned Status = "decommissioned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance, StatusDecommissioned:
		return true
	default:
		return false
	}
}

// Asset is a tracked piece of generation equipment. Names are unique
// ignoring case; deleting an asset removes its work orders with it.
type Asset struct {
	ID          int64                       `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"type:varchar(100);not null" json:"name"`
	Category    string                      `gorm:"type:varchar(50);not null" json:"category"`
	Status      Status                      `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Location    string                      `gorm:"type:varchar(100);not null" json:"location"`
	CapacityMW  float64                     `gorm:"column:capacity_mw;not null" json:"capacity_mw"`
	InstalledAt dates.Date                  `gorm:"column:installed_at;type:date;not null" json:"installed_at"`
	CreatedAt   time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"not null" json:"updated_at"`
	WorkOrders  []workorderdomain.WorkOrder `gorm:"foreignKey:AssetID" json:"-"`
}

// TableName sets the database table name.
func (Asset) TableName() string { return "assets" }

// Response is the asset wire shape: all asset fields plus a lightweight
// summary of its work orders.
type Response struct {
	ID          int64                     `json:"id"`
	Name        string                    `json:"name"`
	Category    string                    `json:"category"`
	Status      Status                    `json:"status"`
	Location    string                    `json:"location"`
	CapacityMW  float64                   `json:"capacity_mw"`
	InstalledAt dates.Date                `json:"installed_at"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	WorkOrders  []workorderdomain.Summary `json:"work_orders"`
}

func NewResponse(a *Asset) Response {
	summaries := make([]workorderdomain.Summary, 0, len(a.WorkOrders))
	for _, w := range a.WorkOrders {
		summaries = append(summaries, workorderdomain.Summarize(w))
	}
	return Response{
		ID:          a.ID,
		Name:        a.Name,
		Category:    a.Category,
		Status:      a.Status,
		Location:    a.Location,
		CapacityMW:  a.CapacityMW,
		InstalledAt: a.InstalledAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		WorkOrders:  summaries,
	}
}
