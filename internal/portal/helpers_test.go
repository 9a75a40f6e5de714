package portal

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/common/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestAPI serves the real router over a seeded in-memory store
func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.Database.DBName = ":memory:"
	cfg.Server.UploadDir = t.TempDir()

	db, err := database.NewDatabase(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.InitDefaultAccounts(t.Context(), cfg.Seed))

	r, err := apiserver.NewRouter(cfg, db, zap.NewNop(), nil)
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestController(t *testing.T, baseURL string) *Controller {
	t.Helper()
	view, err := NewView(time.UTC)
	require.NoError(t, err)
	return NewController(NewClient(baseURL+"/api", zap.NewNop()), view, zap.NewNop())
}

func requireToast(t *testing.T, c *Controller, kind ToastKind, message string) {
	t.Helper()
	require.NotNil(t, c.Toast())
	require.Equal(t, Toast{Message: message, Kind: kind}, *c.Toast())
}
