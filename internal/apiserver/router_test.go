package apiserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/config"
	"github.com/luhambo/maintenance/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func newTestConfig(t *testing.T) *config.APIServerConfig {
	t.Helper()
	cfg := config.Default()
	cfg.Database.DBName = ":memory:"
	cfg.Server.UploadDir = t.TempDir()
	cfg.Server.StaticDir = t.TempDir()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "luhambo"
	return cfg
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := newTestConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Server.StaticDir, "style.css"), []byte("body { color: #1d3557; }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Server.UploadDir, "tap.png"), []byte("png"), 0o644))

	db, err := database.NewDatabase(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.InitDefaultAccounts(t.Context(), cfg.Seed))

	r, err := NewRouter(cfg, db, zap.NewNop(), metrics.New(cfg.Metrics))
	require.NoError(t, err)

	health := get(r, "/healthz")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.NotEmpty(t, health.Header().Get(cnst.HeaderRequestID))

	users := get(r, "/api/users")
	require.Equal(t, http.StatusOK, users.Code)
	assert.Equal(t, "2024001", gjson.Get(users.Body.String(), "users.0.studentNo").String())

	assert.Equal(t, http.StatusOK, get(r, "/api/openapi.json").Code)

	css := get(r, "/static/style.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Body.String(), "#1d3557")
	// the portal owns "/" when it is enabled
	assert.Equal(t, http.StatusNotFound, get(r, "/").Code)

	img := get(r, "/uploads/tap.png")
	assert.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "png", img.Body.String())

	m := get(r, "/metrics")
	require.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), `luhambo_http_requests_total{method="GET",route="/api/users",status="200"} 1`)
}

func TestNewRouter_WithoutMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := newTestConfig(t)
	cfg.Server.StaticDir = ""

	db, err := database.NewDatabase(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r, err := NewRouter(cfg, db, zap.NewNop(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, get(r, "/metrics").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/stats/admin").Code)
}
