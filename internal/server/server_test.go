package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	assetdomain "github.com/smallbiznis/gridplant/internal/asset/domain"
	assetrepository "github.com/smallbiznis/gridplant/internal/asset/repository"
	assetservice "github.com/smallbiznis/gridplant/internal/asset/service"
	"github.com/smallbiznis/gridplant/internal/config"
	"github.com/smallbiznis/gridplant/internal/observability"
	obsmetrics "github.com/smallbiznis/gridplant/internal/observability/metrics"
	workorderdomain "github.com/smallbiznis/gridplant/internal/workorder/domain"
	workorderrepository "github.com/smallbiznis/gridplant/internal/workorder/repository"
	workorderservice "github.com/smallbiznis/gridplant/internal/workorder/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, db.AutoMigrate(&assetdomain.Asset{}, &workorderdomain.WorkOrder{}))

	cfg := config.Config{PageSizeDefault: 50, PageSizeMax: 100}
	obsCfg := observability.Config{ServiceName: "gridplant", Environment: "test"}
	engine := NewEngine(obsCfg, obsmetrics.NewHTTPMetrics(prometheus.NewRegistry()))

	assetRepo := assetrepository.Provide()
	assetSvc := assetservice.New(assetservice.Params{
		DB:   db,
		Log:  zap.NewNop(),
		Cfg:  cfg,
		Repo: assetRepo,
	})
	workorderSvc := workorderservice.New(workorderservice.Params{
		DB:     db,
		Log:    zap.NewNop(),
		Cfg:    cfg,
		Repo:   workorderrepository.Provide(),
		Assets: assetRepo,
	})

	return NewServer(ServerParams{
		Gin:          engine,
		Cfg:          cfg,
		AssetSvc:     assetSvc,
		WorkOrderSvc: workorderSvc,
	})
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func assetPayload(name string) map[string]any {
	return map[string]any{
		"name":         name,
		"category":     "turbine",
		"status":       "active",
		"location":     "Plant 7",
		"capacity_mw":  12.5,
		"installed_at": "2018-05-01",
	}
}

func workOrderPayload(assetID any, title string) map[string]any {
	return map[string]any{
		"asset_id": assetID,
		"title":    title,
		"priority": "high",
	}
}
