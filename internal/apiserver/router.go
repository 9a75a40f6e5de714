package apiserver

import (
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/apiserver/handler"
	"github.com/luhambo/maintenance/internal/apiserver/middleware"
	"github.com/luhambo/maintenance/internal/common/config"
	"github.com/luhambo/maintenance/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// NewRouter builds the HTTP surface. m may be nil when metrics are disabled.
func NewRouter(cfg *config.APIServerConfig, db database.Database, logger *zap.Logger, m *metrics.Metrics) (*gin.Engine, error) {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.AccessLog(logger),
		middleware.Lang(),
	)
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	if m != nil {
		r.Use(m.Middleware())
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	openAPI, err := handler.NewOpenAPI(cfg.Server.BasePath)
	if err != nil {
		return nil, err
	}

	var (
		authHandler   = handler.NewAuth(db, logger, m)
		reportHandler = handler.NewReport(db, logger, m, cfg.Server)
		chatHandler   = handler.NewChat(db, logger, m)
		userHandler   = handler.NewUser(db, logger)
		statsHandler  = handler.NewStats(db, logger)
		healthHandler = handler.NewHealth(db, logger)
	)

	r.GET("/healthz", healthHandler.Check)

	api := r.Group(cfg.Server.BasePath)
	{
		api.GET("/openapi.json", openAPI.Document)

		api.POST("/register", authHandler.Register)
		api.POST("/login/student", authHandler.LoginStudent)
		api.POST("/login/admin", authHandler.LoginAdmin)

		api.POST("/reports", reportHandler.Submit)
		api.GET("/reports", reportHandler.List)
		api.GET("/reports/student/:studentId", reportHandler.ListForStudent)
		api.PUT("/reports/:id", reportHandler.Update)
		api.POST("/reports/:id/image", reportHandler.UploadImage)

		api.GET("/chat/:reportId", chatHandler.List)
		api.POST("/chat/:reportId", chatHandler.Post)

		api.GET("/users", userHandler.List)

		api.GET("/stats/student/:studentId", statsHandler.Student)
		api.GET("/stats/admin", statsHandler.Admin)
	}

	r.Static(handler.UploadURLPrefix, cfg.Server.UploadDir)
	if dir := cfg.Server.StaticDir; dir != "" {
		r.Static("/static", dir)
	}

	return r, nil
}
