package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	assetdomain "github.com/smallbiznis/gridplant/internal/asset/domain"
	assetrepository "github.com/smallbiznis/gridplant/internal/asset/repository"
	"github.com/smallbiznis/gridplant/internal/config"
	"github.com/smallbiznis/gridplant/internal/patch"
	"github.com/smallbiznis/gridplant/internal/validation"
	"github.com/smallbiznis/gridplant/internal/workorder/domain"
	"github.com/smallbiznis/gridplant/internal/workorder/repository"
	"github.com/smallbiznis/gridplant/pkg/dates"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupWorkOrderService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&assetdomain.Asset{}, &domain.WorkOrder{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := New(Params{
		DB:     db,
		Log:    zap.NewNop(),
		Cfg:    config.Config{PageSizeDefault: 50, PageSizeMax: 100},
		Repo:   repository.Provide(),
		Assets: assetrepository.Provide(),
	})
	return svc, db
}

func seedAsset(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()

	now := time.Now().UTC()
	asset := assetdomain.Asset{
		Name:        name,
		Category:    "turbine",
		Status:      assetdomain.StatusActive,
		Location:    "Plant 7",
		CapacityMW:  12.5,
		InstalledAt: dates.New(2018, time.May, 1),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(&asset).Error; err != nil {
		t.Fatalf("seed asset: %v", err)
	}
	return asset.ID
}

func workOrderCreateRequest(assetID int64, title string) domain.CreateRequest {
	return domain.CreateRequest{
		AssetID:  assetID,
		Title:    title,
		Status:   domain.StatusOpen,
		Priority: domain.PriorityHigh,
	}
}

func TestCreateWorkOrder(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	assetID := seedAsset(t, db, "Unit Alpha")

	created, err := svc.Create(context.Background(), workOrderCreateRequest(assetID, "Replace filter"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}
	if created.AssetID != assetID {
		t.Fatalf("expected asset %d, got %d", assetID, created.AssetID)
	}
}

func TestCreateWorkOrderDefaults(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	assetID := seedAsset(t, db, "Unit Defaults")

	created, err := svc.Create(context.Background(), domain.CreateRequest{
		AssetID: assetID,
		Title:   "Check couplings",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.StatusOpen || created.Priority != domain.PriorityMedium {
		t.Fatalf("expected open/medium defaults, got %s/%s", created.Status, created.Priority)
	}
}

func TestCreateWorkOrderMissingAsset(t *testing.T) {
	svc, _ := setupWorkOrderService(t)

	_, err := svc.Create(context.Background(), workOrderCreateRequest(999, "Replace filter"))
	if !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected related asset not found, got %v", err)
	}
}

func TestCreateWorkOrderDuplicateTitle(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetA := seedAsset(t, db, "Unit A")
	assetB := seedAsset(t, db, "Unit B")

	if _, err := svc.Create(ctx, workOrderCreateRequest(assetA, "Oil change")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, workOrderCreateRequest(assetA, "Oil change"))
	if !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("expected duplicate title error, got %v", err)
	}

	// The same title on another asset is fine.
	if _, err := svc.Create(ctx, workOrderCreateRequest(assetB, "Oil change")); err != nil {
		t.Fatalf("create on second asset: %v", err)
	}
}

func TestCreateWorkOrderTemporalValidation(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	assetID := seedAsset(t, db, "Unit Temporal")

	start := dates.New(2024, time.March, 10)
	end := dates.New(2024, time.March, 1)
	req := workOrderCreateRequest(assetID, "Rewind stator")
	req.ScheduledStart = &start
	req.ScheduledEnd = &end

	_, err := svc.Create(context.Background(), req)
	var vErr *validation.Errors
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if vErr.Fields[0].Field != "scheduled_end" {
		t.Fatalf("expected scheduled_end error, got %v", vErr.Fields)
	}
}

func TestCreateWorkOrderInvalidAssetID(t *testing.T) {
	svc, _ := setupWorkOrderService(t)

	_, err := svc.Create(context.Background(), workOrderCreateRequest(0, "Replace filter"))
	var vErr *validation.Errors
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation errors, got %v", err)
	}
}

func TestUpdateWorkOrderPartial(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetID := seedAsset(t, db, "Unit Patch")

	desc := "Monthly maintenance"
	req := workOrderCreateRequest(assetID, "Grease bearings")
	req.Description = &desc
	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, domain.Patch{
		Status: patch.Field[domain.Status]{Value: domain.StatusInProgress, Set: true},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.StatusInProgress {
		t.Fatalf("expected in_progress, got %s", updated.Status)
	}
	if updated.Title != created.Title || updated.Description == nil || *updated.Description != desc {
		t.Fatal("expected untouched fields to keep their values")
	}
}

func TestUpdateWorkOrderClearsNullable(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetID := seedAsset(t, db, "Unit Clear")

	desc := "Quarterly inspection"
	start := dates.New(2024, time.June, 1)
	req := workOrderCreateRequest(assetID, "Inspect blades")
	req.Description = &desc
	req.ScheduledStart = &start
	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, domain.Patch{
		Description:    patch.Field[string]{Set: true, Null: true},
		ScheduledStart: patch.Field[dates.Date]{Set: true, Null: true},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != nil {
		t.Fatalf("expected cleared description, got %v", *updated.Description)
	}
	if updated.ScheduledStart != nil {
		t.Fatal("expected cleared scheduled_start")
	}
}

func TestUpdateWorkOrderRejectsNullTitle(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetID := seedAsset(t, db, "Unit NullTitle")

	created, err := svc.Create(ctx, workOrderCreateRequest(assetID, "Swap gasket"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, created.ID, domain.Patch{
		Title: patch.Field[string]{Set: true, Null: true},
	})
	var vErr *validation.Errors
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if vErr.Fields[0].Field != "title" {
		t.Fatalf("expected title error, got %v", vErr.Fields)
	}
}

func TestUpdateWorkOrderTemporalAgainstStored(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetID := seedAsset(t, db, "Unit Merge")

	start := dates.New(2024, time.July, 15)
	req := workOrderCreateRequest(assetID, "Align shaft")
	req.ScheduledStart = &start
	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A patched end date is checked against the stored start date.
	end := dates.New(2024, time.July, 1)
	_, err = svc.Update(ctx, created.ID, domain.Patch{
		ScheduledEnd: patch.Field[dates.Date]{Value: end, Set: true},
	})
	var vErr *validation.Errors
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation errors, got %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ScheduledEnd != nil {
		t.Fatal("expected stored record unchanged after failed update")
	}
}

func TestUpdateWorkOrderCompletedAtRule(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetID := seedAsset(t, db, "Unit Complete")

	start := dates.New(2024, time.August, 10)
	req := workOrderCreateRequest(assetID, "Test relays")
	req.ScheduledStart = &start
	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	early := time.Date(2024, time.August, 1, 9, 0, 0, 0, time.UTC)
	_, err = svc.Update(ctx, created.ID, domain.Patch{
		CompletedAt: patch.Field[time.Time]{Value: early, Set: true},
	})
	var vErr *validation.Errors
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if vErr.Fields[0].Field != "completed_at" {
		t.Fatalf("expected completed_at error, got %v", vErr.Fields)
	}

	late := time.Date(2024, time.August, 20, 9, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, created.ID, domain.Patch{
		Status:      patch.Field[domain.Status]{Value: domain.StatusCompleted, Set: true},
		CompletedAt: patch.Field[time.Time]{Value: late, Set: true},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(late) {
		t.Fatalf("expected completed_at %v, got %v", late, updated.CompletedAt)
	}
}

func TestUpdateWorkOrderDuplicateTitle(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetID := seedAsset(t, db, "Unit Dup")

	if _, err := svc.Create(ctx, workOrderCreateRequest(assetID, "Task A")); err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, workOrderCreateRequest(assetID, "Task B"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, second.ID, domain.Patch{
		Title: patch.Field[string]{Value: "Task A", Set: true},
	})
	if !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("expected duplicate title error, got %v", err)
	}
}

func TestDeleteWorkOrder(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetID := seedAsset(t, db, "Unit Delete")

	created, err := svc.Create(ctx, workOrderCreateRequest(assetID, "Flush coolant"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestListWorkOrdersFilters(t *testing.T) {
	svc, db := setupWorkOrderService(t)
	ctx := context.Background()
	assetA := seedAsset(t, db, "Unit List A")
	assetB := seedAsset(t, db, "Unit List B")

	reqA := workOrderCreateRequest(assetA, "Task A")
	reqA.Priority = domain.PriorityCritical
	reqB := workOrderCreateRequest(assetB, "Task B")
	reqB.Priority = domain.PriorityLow
	for _, req := range []domain.CreateRequest{reqA, reqB} {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	byAsset, err := svc.List(ctx, domain.ListRequest{AssetID: assetA})
	if err != nil {
		t.Fatalf("list by asset: %v", err)
	}
	if len(byAsset) != 1 || byAsset[0].Title != "Task A" {
		t.Fatalf("expected only Task A, got %v", byAsset)
	}

	byPriority, err := svc.List(ctx, domain.ListRequest{Priority: domain.PriorityLow})
	if err != nil {
		t.Fatalf("list by priority: %v", err)
	}
	if len(byPriority) != 1 || byPriority[0].Title != "Task B" {
		t.Fatalf("expected only Task B, got %v", byPriority)
	}
}
