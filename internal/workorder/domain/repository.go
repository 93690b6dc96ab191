package domain

import (
	"context"

	"github.com/smallbiznis/gridplant/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListFilter struct {
	Status   Status
	Priority Priority
	AssetID  int64
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, workOrder *WorkOrder) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*WorkOrder, error)
	FindByAssetAndTitle(ctx context.Context, db *gorm.DB, assetID int64, title string) (*WorkOrder, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Page) ([]*WorkOrder, error)
	Update(ctx context.Context, db *gorm.DB, workOrder *WorkOrder) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
