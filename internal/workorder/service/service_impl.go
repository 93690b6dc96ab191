package service

import (
	"context"
	"time"

	assetdomain "github.com/smallbiznis/gridplant/internal/asset/domain"
	"github.com/smallbiznis/gridplant/internal/config"
	"github.com/smallbiznis/gridplant/internal/validation"
	"github.com/smallbiznis/gridplant/internal/workorder/domain"
	"github.com/smallbiznis/gridplant/pkg/db"
	"github.com/smallbiznis/gridplant/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	DB     *gorm.DB
	Log    *zap.Logger
	Cfg    config.Config
	Repo   domain.Repository
	Assets assetdomain.Repository
}

type service struct {
	db     *gorm.DB
	log    *zap.Logger
	cfg    config.Config
	repo   domain.Repository
	assets assetdomain.Repository
}

func New(p Params) domain.Service {
	return &service{
		db:     p.DB,
		log:    p.Log.Named("workorder.service"),
		cfg:    p.Cfg,
		repo:   p.Repo,
		assets: p.Assets,
	}
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	workOrder, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if workOrder == nil {
		return nil, domain.ErrNotFound
	}
	return workOrder, nil
}

func (s *service) List(ctx context.Context, req domain.ListRequest) ([]domain.WorkOrder, error) {
	page := pagination.Page{Skip: req.Skip, Limit: req.Limit}.
		Normalize(s.cfg.PageSizeDefault, s.cfg.PageSizeMax)

	workOrders, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Status:   req.Status,
		Priority: req.Priority,
		AssetID:  req.AssetID,
	}, page)
	if err != nil {
		return nil, err
	}

	out := make([]domain.WorkOrder, 0, len(workOrders))
	for _, w := range workOrders {
		out = append(out, *w)
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateRequest) (*domain.WorkOrder, error) {
	if req.AssetID <= 0 {
		return nil, validation.New("asset_id", "must be greater than 0")
	}

	now := time.Now().UTC()
	workOrder := &domain.WorkOrder{
		AssetID:        req.AssetID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		ScheduledStart: req.ScheduledStart,
		ScheduledEnd:   req.ScheduledEnd,
		CompletedAt:    req.CompletedAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if workOrder.Status == "" {
		workOrder.Status = domain.StatusOpen
	}
	if workOrder.Priority == "" {
		workOrder.Priority = domain.PriorityMedium
	}

	if err := domain.Validate(workOrder); err != nil {
		return nil, err
	}

	exists, err := s.assets.Exists(ctx, s.db, req.AssetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrAssetNotFound
	}

	existing, err := s.repo.FindByAssetAndTitle(ctx, s.db, req.AssetID, workOrder.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateTitle
	}

	if err := s.repo.Insert(ctx, s.db, workOrder); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, err
	}

	s.log.Info("work order created",
		zap.Int64("work_order_id", workOrder.ID),
		zap.Int64("asset_id", workOrder.AssetID),
	)
	return workOrder, nil
}

func (s *service) Update(ctx context.Context, id int64, p domain.Patch) (*domain.WorkOrder, error) {
	workOrder, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if workOrder == nil {
		return nil, domain.ErrNotFound
	}

	// Required columns reject an explicit null; the nullable ones treat
	// it as "clear".
	errs := &validation.Errors{}
	if p.Title.Set {
		if p.Title.Null {
			errs.Add("title", "cannot be null")
		} else {
			workOrder.Title = p.Title.Value
		}
	}
	if p.Status.Set {
		if p.Status.Null {
			errs.Add("status", "cannot be null")
		} else {
			workOrder.Status = p.Status.Value
		}
	}
	if p.Priority.Set {
		if p.Priority.Null {
			errs.Add("priority", "cannot be null")
		} else {
			workOrder.Priority = p.Priority.Value
		}
	}
	if p.Description.Set {
		if p.Description.Null {
			workOrder.Description = nil
		} else {
			v := p.Description.Value
			workOrder.Description = &v
		}
	}
	if p.ScheduledStart.Set {
		if p.ScheduledStart.Null {
			workOrder.ScheduledStart = nil
		} else {
			v := p.ScheduledStart.Value
			workOrder.ScheduledStart = &v
		}
	}
	if p.ScheduledEnd.Set {
		if p.ScheduledEnd.Null {
			workOrder.ScheduledEnd = nil
		} else {
			v := p.ScheduledEnd.Value
			workOrder.ScheduledEnd = &v
		}
	}
	if p.CompletedAt.Set {
		if p.CompletedAt.Null {
			workOrder.CompletedAt = nil
		} else {
			v := p.CompletedAt.Value
			workOrder.CompletedAt = &v
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := domain.Validate(workOrder); err != nil {
		return nil, err
	}

	if p.Title.Present() {
		other, err := s.repo.FindByAssetAndTitle(ctx, s.db, workOrder.AssetID, workOrder.Title)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != workOrder.ID {
			return nil, domain.ErrDuplicateTitle
		}
	}

	workOrder.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, workOrder); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, err
	}
	return workOrder, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	workOrder, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if workOrder == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}

	s.log.Info("work order deleted", zap.Int64("work_order_id", id))
	return nil
}
