package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/config"
	"github.com/luhambo/maintenance/internal/i18n"
	"github.com/luhambo/maintenance/internal/portal"
	"github.com/luhambo/maintenance/pkg/logger"
	"github.com/luhambo/maintenance/pkg/metrics"
	"github.com/luhambo/maintenance/pkg/trace"
	"github.com/luhambo/maintenance/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", cnst.CommandName, version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   cnst.CommandName,
		Short: "Luhambo maintenance API server",
		Long:  "Luhambo maintenance API server serves report submission, triage and chat for the campus portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", "apiserver.yaml", "path to configuration file, like /etc/luhambo/apiserver.yaml")
	rootCmd.AddCommand(versionCmd)
}

func initLogger(cfg *config.APIServerConfig) (*zap.Logger, error) {
	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return lg, nil
}

func initI18n(cfg *config.I18nConfig) error {
	return i18n.InitTranslator(cfg.Path, cfg.DefaultLang)
}

func initDatabase(ctx context.Context, lg *zap.Logger, cfg *config.APIServerConfig) (database.Database, error) {
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.InitDefaultAccounts(ctx, cfg.Seed); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed default accounts: %w", err)
	}
	lg.Info("database ready", zap.String("type", cfg.Database.Type))
	return db, nil
}

func initTracing(ctx context.Context, lg *zap.Logger, cfg *config.TracingConfig) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	return trace.InitTracing(ctx, cfg, lg)
}

func initMetrics(cfg *config.MetricsConfig) *metrics.Metrics {
	if !cfg.Enabled {
		return nil
	}
	return metrics.New(*cfg)
}

// initPortal builds the server-rendered portal. It talks to the API over
// HTTP like any other client; the carousel ticks until ctx is done.
func initPortal(ctx context.Context, lg *zap.Logger, cfg *config.PortalConfig) (*portal.Server, error) {
	loc := time.Local
	if cfg.TimeZone != "" {
		l, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("failed to load portal time zone: %w", err)
		}
		loc = l
	}
	view, err := portal.NewView(loc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse portal templates: %w", err)
	}
	carousel := portal.NewCarousel(len(portal.Slides), portal.CarouselInterval)
	go carousel.Run(ctx)
	return portal.NewServer(portal.NewClient(cfg.APIURL, lg), view, carousel, lg), nil
}

func run(ctx context.Context) error {
	cfg, cfgPath, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration %s: %w", cfgPath, err)
	}

	lg, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()
	lg.Info("starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath),
	)

	if err := initI18n(&cfg.I18n); err != nil {
		return fmt.Errorf("failed to initialize i18n: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := initTracing(ctx, lg, &cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	db, err := initDatabase(ctx, lg, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	gin.SetMode(gin.ReleaseMode)
	router, err := apiserver.NewRouter(cfg, db, lg, initMetrics(&cfg.Metrics))
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	if cfg.Portal.Enabled {
		site, err := initPortal(ctx, lg, &cfg.Portal)
		if err != nil {
			return err
		}
		site.Register(router)
		lg.Info("portal enabled", zap.String("api_url", cfg.Portal.APIURL))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}
	errCh := make(chan error, 1)
	go func() {
		lg.Info("listening", zap.String("addr", srv.Addr), zap.String("base_path", cfg.Server.BasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
	case <-ctx.Done():
		lg.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("failed to shut down server", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		lg.Warn("failed to flush traces", zap.Error(err))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
