package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/gridplant/internal/patch"
	"github.com/smallbiznis/gridplant/pkg/dates"
)

type CreateRequest struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Status      Status     `json:"status"`
	Location    string     `json:"location"`
	CapacityMW  float64    `json:"capacity_mw"`
	InstalledAt dates.Date `json:"installed_at"`
}

// Patch carries a partial update. The name is immutable after creation,
// so it has no field here; none of these columns are nullable, so an
// explicit null on any of them is a validation error.
type Patch struct {
	Category    patch.Field[string]     `json:"category"`
	Status      patch.Field[Status]     `json:"status"`
	Location    patch.Field[string]     `json:"location"`
	CapacityMW  patch.Field[float64]    `json:"capacity_mw"`
	InstalledAt patch.Field[dates.Date] `json:"installed_at"`
}

type ListRequest struct {
	Skip   int
	Limit  int
	Status Status
	Search string
}

type Service interface {
	GetByID(ctx context.Context, id int64) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, id int64, p Patch) (*Response, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrNotFound      = errors.New("asset_not_found")
	ErrDuplicateName = errors.New("duplicate_asset_name")
)
