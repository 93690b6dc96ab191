package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/gridplant/internal/asset"
	assetdomain "github.com/smallbiznis/gridplant/internal/asset/domain"
	"github.com/smallbiznis/gridplant/internal/config"
	"github.com/smallbiznis/gridplant/internal/observability"
	obsmiddleware "github.com/smallbiznis/gridplant/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/gridplant/internal/observability/metrics"
	"github.com/smallbiznis/gridplant/internal/workorder"
	workorderdomain "github.com/smallbiznis/gridplant/internal/workorder/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	asset.Module,
	workorder.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	assetSvc     assetdomain.Service
	workorderSvc workorderdomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	AssetSvc     assetdomain.Service
	WorkOrderSvc workorderdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		assetSvc:     p.AssetSvc,
		workorderSvc: p.WorkOrderSvc,
	}

	svc.registerAssetRoutes()
	svc.registerWorkOrderRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAssetRoutes() {
	assets := s.engine.Group("/assets")

	assets.GET("", s.ListAssets)
	assets.POST("", s.CreateAsset)
	assets.GET("/:id", s.GetAsset)
	assets.PATCH("/:id", s.UpdateAsset)
	assets.DELETE("/:id", s.DeleteAsset)
}

func (s *Server) registerWorkOrderRoutes() {
	workOrders := s.engine.Group("/workorders")

	workOrders.GET("", s.ListWorkOrders)
	workOrders.POST("", s.CreateWorkOrder)
	workOrders.GET("/:id", s.GetWorkOrder)
	workOrders.PATCH("/:id", s.UpdateWorkOrder)
	workOrders.DELETE("/:id", s.DeleteWorkOrder)
}
