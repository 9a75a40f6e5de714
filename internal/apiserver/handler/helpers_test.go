package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/apiserver/middleware"
	"github.com/luhambo/maintenance/internal/common/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// failingDB answers every call with err
type failingDB struct {
	err error
}

func (m *failingDB) Close() error                   { return nil }
func (m *failingDB) Ping(ctx context.Context) error { return m.err }
func (m *failingDB) InitDefaultAccounts(ctx context.Context, seed config.SeedConfig) error {
	return m.err
}
func (m *failingDB) CreateUser(ctx context.Context, user *database.User) error { return m.err }
func (m *failingDB) FindStudent(ctx context.Context, identifier, password string) (*database.User, error) {
	return nil, m.err
}
func (m *failingDB) FindAdmin(ctx context.Context, username, password string) (*database.Admin, error) {
	return nil, m.err
}
func (m *failingDB) ListUsers(ctx context.Context, search string) ([]*database.User, error) {
	return nil, m.err
}
func (m *failingDB) CreateReport(ctx context.Context, report *database.Report) error { return m.err }
func (m *failingDB) ListStudentReports(ctx context.Context, studentID uint) ([]*database.Report, error) {
	return nil, m.err
}
func (m *failingDB) ListReports(ctx context.Context, filter database.ReportFilter) ([]*database.ReportView, error) {
	return nil, m.err
}
func (m *failingDB) UpdateReport(ctx context.Context, id uint, status, priority, adminNotes string) error {
	return m.err
}
func (m *failingDB) SetReportImage(ctx context.Context, id uint, path string) error { return m.err }
func (m *failingDB) SaveMessage(ctx context.Context, message *database.ChatMessage) error {
	return m.err
}
func (m *failingDB) ListMessages(ctx context.Context, reportID uint) ([]*database.ChatMessage, error) {
	return nil, m.err
}
func (m *failingDB) StudentStats(ctx context.Context, studentID uint) (*database.StudentStats, error) {
	return nil, m.err
}
func (m *failingDB) AdminStats(ctx context.Context) (*database.AdminStats, error) {
	return nil, m.err
}

func newMemoryDB(t *testing.T) database.Database {
	t.Helper()
	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testServerConfig(t *testing.T) config.ServerConfig {
	t.Helper()
	return config.ServerConfig{
		BasePath:      "/api",
		UploadDir:     t.TempDir(),
		MaxUploadSize: 1024,
	}
}

// newTestRouter mounts the handlers the same way the apiserver does
func newTestRouter(t *testing.T, db database.Database, server config.ServerConfig) *gin.Engine {
	t.Helper()
	lg := zap.NewNop()
	r := gin.New()
	r.Use(middleware.Lang())

	auth := NewAuth(db, lg, nil)
	report := NewReport(db, lg, nil, server)
	chat := NewChat(db, lg, nil)
	user := NewUser(db, lg)
	stats := NewStats(db, lg)
	health := NewHealth(db, lg)
	openAPI, err := NewOpenAPI(server.BasePath)
	require.NoError(t, err)

	r.GET("/healthz", health.Check)
	api := r.Group("/api")
	api.GET("/openapi.json", openAPI.Document)
	api.POST("/register", auth.Register)
	api.POST("/login/student", auth.LoginStudent)
	api.POST("/login/admin", auth.LoginAdmin)
	api.POST("/reports", report.Submit)
	api.GET("/reports", report.List)
	api.GET("/reports/student/:studentId", report.ListForStudent)
	api.PUT("/reports/:id", report.Update)
	api.POST("/reports/:id/image", report.UploadImage)
	api.GET("/chat/:reportId", chat.List)
	api.POST("/chat/:reportId", chat.Post)
	api.GET("/users", user.List)
	api.GET("/stats/student/:studentId", stats.Student)
	api.GET("/stats/admin", stats.Admin)
	return r
}

func do(r http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		buf, _ := json.Marshal(b)
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody(no, email string) map[string]any {
	return map[string]any{
		"fullName":     "Thandi " + no,
		"studentNo":    no,
		"email":        email,
		"buildingName": "Building C",
		"roomNumber":   "310",
		"floor":        "Third Floor",
		"password":     "secret1",
	}
}
