// Package server wires configuration, storage, services and transports
// together and runs the HTTP and gRPC front ends until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/policydesk/internal/logging"
	"github.com/dmitrijs2005/policydesk/internal/server/config"
	"github.com/dmitrijs2005/policydesk/internal/server/metrics"
	"github.com/dmitrijs2005/policydesk/internal/server/reports"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/policydesk/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	gs "github.com/dmitrijs2005/policydesk/internal/server/grpc"
	hs "github.com/dmitrijs2005/policydesk/internal/server/http"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	admin    *services.AdminService
	exporter hs.ReportExporter
	metrics  *metrics.Metrics
	registry *prometheus.Registry
}

// logOutput is where the JSON log goes; tests capture it.
var logOutput io.Writer = os.Stdout

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp connects storage and applies migrations. A migration failure is
// returned and must abort startup.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(logOutput, c.LogLevel)

	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.InMemory() {
		logger.Warn(ctx, "Using in-memory repositories, data is lost on exit")
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		var err error
		db, err = openDB(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("db ping error: %w", err)
		}

		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	ps := services.NewPartnerService(db, rm)
	pols := services.NewPolicyService(db, rm)
	admin := services.NewAdminService(ps, pols, m, logger)

	app := &App{config: c, logger: logger, db: db, admin: admin, metrics: m, registry: registry}

	if c.ReportsEnabled() {
		store, err := reports.NewS3Store(ctx, reports.S3Config{
			AccessKey: c.S3RootUser,
			SecretKey: c.S3RootPassword,
			Bucket:    c.S3Bucket,
			Region:    c.S3Region,
			Endpoint:  c.S3BaseEndpoint,
		})
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("report storage init error: %w", err)
		}
		app.exporter = reports.NewExporter(ps, store, c.ReportLinkValidity, m, logger)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.admin, app.metrics)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.admin, app.exporter, app.metrics, app.registry)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both APIs until ctx is cancelled, a signal arrives, or either
// server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.Close()
	app.logger.Info(context.Background(), "App stopped")
}

func (app *App) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close error", "error", err)
		}
	}
}
