package domain

import (
	"context"

	"github.com/smallbiznis/gridplant/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListFilter struct {
	Status Status
	Search string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, asset *Asset) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Asset, error)
	// FindByName matches the name case-insensitively; a missing asset is
	// (nil, nil), not an error.
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Asset, error)
	Exists(ctx context.Context, db *gorm.DB, id int64) (bool, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Page) ([]*Asset, error)
	Update(ctx context.Context, db *gorm.DB, asset *Asset) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	// DeleteWorkOrders removes every work order owned by the asset; it
	// runs in the same transaction as Delete.
	DeleteWorkOrders(ctx context.Context, db *gorm.DB, assetID int64) error
}
