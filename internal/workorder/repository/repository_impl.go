package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/gridplant/internal/workorder/domain"
	"github.com/smallbiznis/gridplant/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, workOrder *domain.WorkOrder) error {
	return db.WithContext(ctx).Create(workOrder).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.WorkOrder, error) {
	var workOrder domain.WorkOrder
	err := db.WithContext(ctx).First(&workOrder, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workOrder, nil
}

func (r *repo) FindByAssetAndTitle(ctx context.Context, db *gorm.DB, assetID int64, title string) (*domain.WorkOrder, error) {
	var workOrder domain.WorkOrder
	err := db.WithContext(ctx).
		Where("asset_id = ? AND title = ?", assetID, title).
		First(&workOrder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workOrder, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Page) ([]*domain.WorkOrder, error) {
	var workOrders []*domain.WorkOrder
	stmt := db.WithContext(ctx).Model(&domain.WorkOrder{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		stmt = stmt.Where("priority = ?", filter.Priority)
	}
	if filter.AssetID > 0 {
		stmt = stmt.Where("asset_id = ?", filter.AssetID)
	}
	err := stmt.
		Order("created_at DESC, id DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&workOrders).Error
	if err != nil {
		return nil, err
	}
	return workOrders, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, workOrder *domain.WorkOrder) error {
	return db.WithContext(ctx).Exec(
		`UPDATE work_orders
		 SET title = ?, description = ?, status = ?, priority = ?, scheduled_start = ?, scheduled_end = ?, completed_at = ?, updated_at = ?
		 WHERE id = ?`,
		workOrder.Title,
		workOrder.Description,
		workOrder.Status,
		workOrder.Priority,
		workOrder.ScheduledStart,
		workOrder.ScheduledEnd,
		workOrder.CompletedAt,
		workOrder.UpdatedAt,
		workOrder.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM work_orders WHERE id = ?`, id).Error
}
