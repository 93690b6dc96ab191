package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/gridplant/internal/patch"
	"github.com/smallbiznis/gridplant/pkg/dates"
)

type CreateRequest struct {
	AssetID        int64       `json:"asset_id"`
	Title          string      `json:"title"`
	Description    *string     `json:"description"`
	Status         Status      `json:"status"`
	Priority       Priority    `json:"priority"`
	ScheduledStart *dates.Date `json:"scheduled_start"`
	ScheduledEnd   *dates.Date `json:"scheduled_end"`
	CompletedAt    *time.Time  `json:"completed_at"`
}

// Patch carries a partial update. Absent fields keep their prior values;
// an explicit null clears the nullable fields (description, dates,
// completed_at) and is rejected elsewhere.
type Patch struct {
	Title          patch.Field[string]     `json:"title"`
	Description    patch.Field[string]     `json:"description"`
	Status         patch.Field[Status]     `json:"status"`
	Priority       patch.Field[Priority]   `json:"priority"`
	ScheduledStart patch.Field[dates.Date] `json:"scheduled_start"`
	ScheduledEnd   patch.Field[dates.Date] `json:"scheduled_end"`
	CompletedAt    patch.Field[time.Time]  `json:"completed_at"`
}

type ListRequest struct {
	Skip     int
	Limit    int
	Status   Status
	Priority Priority
	AssetID  int64
}

type Service interface {
	GetByID(ctx context.Context, id int64) (*WorkOrder, error)
	List(ctx context.Context, req ListRequest) ([]WorkOrder, error)
	Create(ctx context.Context, req CreateRequest) (*WorkOrder, error)
	Update(ctx context.Context, id int64, p Patch) (*WorkOrder, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrNotFound       = errors.New("work_order_not_found")
	ErrAssetNotFound  = errors.New("related_asset_not_found")
	ErrDuplicateTitle = errors.New("duplicate_work_order_title")
)
