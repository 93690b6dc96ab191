package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/smallbiznis/gridplant/internal/asset/domain"
	"github.com/smallbiznis/gridplant/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, asset *domain.Asset) error {
	return db.WithContext(ctx).Create(asset).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Asset, error) {
	var asset domain.Asset
	err := db.WithContext(ctx).
		Preload("WorkOrders", sortWorkOrders).
		First(&asset, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Asset, error) {
	var asset domain.Asset
	err := db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Page) ([]*domain.Asset, error) {
	var assets []*domain.Asset
	stmt := db.WithContext(ctx).
		Model(&domain.Asset{}).
		Preload("WorkOrders", sortWorkOrders)
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		stmt = stmt.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	err := stmt.
		Order("created_at DESC, id DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, asset *domain.Asset) error {
	return db.WithContext(ctx).Exec(
		`UPDATE assets
		 SET category = ?, status = ?, location = ?, capacity_mw = ?, installed_at = ?, updated_at = ?
		 WHERE id = ?`,
		asset.Category,
		asset.Status,
		asset.Location,
		asset.CapacityMW,
		asset.InstalledAt,
		asset.UpdatedAt,
		asset.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM assets WHERE id = ?`, id).Error
}

func (r *repo) DeleteWorkOrders(ctx context.Context, db *gorm.DB, assetID int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM work_orders WHERE asset_id = ?`, assetID).Error
}

func sortWorkOrders(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
