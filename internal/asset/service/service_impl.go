package service

import (
	"context"
	"time"

	"github.com/smallbiznis/gridplant/internal/asset/domain"
	"github.com/smallbiznis/gridplant/internal/config"
	"github.com/smallbiznis/gridplant/internal/validation"
	"github.com/smallbiznis/gridplant/pkg/db"
	"github.com/smallbiznis/gridplant/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	DB   *gorm.DB
	Log  *zap.Logger
	Cfg  config.Config
	Repo domain.Repository
}

type service struct {
	db   *gorm.DB
	log  *zap.Logger
	cfg  config.Config
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &service{
		db:   p.DB,
		log:  p.Log.Named("asset.service"),
		cfg:  p.Cfg,
		repo: p.Repo,
	}
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Response, error) {
	asset, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}

	resp := domain.NewResponse(asset)
	return &resp, nil
}

func (s *service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	page := pagination.Page{Skip: req.Skip, Limit: req.Limit}.
		Normalize(s.cfg.PageSizeDefault, s.cfg.PageSizeMax)

	assets, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Status: req.Status,
		Search: req.Search,
	}, page)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.Response, 0, len(assets))
	for _, a := range assets {
		responses = append(responses, domain.NewResponse(a))
	}
	return responses, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	now := time.Now().UTC()
	asset := &domain.Asset{
		Name:        req.Name,
		Category:    req.Category,
		Status:      req.Status,
		Location:    req.Location,
		CapacityMW:  req.CapacityMW,
		InstalledAt: req.InstalledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if asset.Status == "" {
		asset.Status = domain.StatusActive
	}

	if err := domain.Validate(asset); err != nil {
		return nil, err
	}

	// Pre-check for a friendly conflict; the unique index still backs it
	// up when two creates race.
	existing, err := s.repo.FindByName(ctx, s.db, asset.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}

	if err := s.repo.Insert(ctx, s.db, asset); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, err
	}

	s.log.Info("asset created",
		zap.Int64("asset_id", asset.ID),
		zap.String("name", asset.Name),
	)

	resp := domain.NewResponse(asset)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id int64, p domain.Patch) (*domain.Response, error) {
	asset, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}

	errs := &validation.Errors{}
	if p.Category.Set {
		if p.Category.Null {
			errs.Add("category", "cannot be null")
		} else {
			asset.Category = p.Category.Value
		}
	}
	if p.Status.Set {
		if p.Status.Null {
			errs.Add("status", "cannot be null")
		} else {
			asset.Status = p.Status.Value
		}
	}
	if p.Location.Set {
		if p.Location.Null {
			errs.Add("location", "cannot be null")
		} else {
			asset.Location = p.Location.Value
		}
	}
	if p.CapacityMW.Set {
		if p.CapacityMW.Null {
			errs.Add("capacity_mw", "cannot be null")
		} else {
			asset.CapacityMW = p.CapacityMW.Value
		}
	}
	if p.InstalledAt.Set {
		if p.InstalledAt.Null {
			errs.Add("installed_at", "cannot be null")
		} else {
			asset.InstalledAt = p.InstalledAt.Value
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := domain.Validate(asset); err != nil {
		return nil, err
	}

	asset.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, asset); err != nil {
		return nil, err
	}

	resp := domain.NewResponse(asset)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	// Work orders go with the asset, in one transaction so a failed
	// delete leaves nothing orphaned.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteWorkOrders(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("asset deleted", zap.Int64("asset_id", id))
	return nil
}
