// Package http exposes the admin workflows as a JSON API over chi.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/policydesk/internal/logging"
	"github.com/dmitrijs2005/policydesk/internal/server/metrics"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/reports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Admin is the workflow surface the handlers drive.
type Admin interface {
	ListPartners(ctx context.Context) ([]*models.PartnerSummary, error)
	GetPartner(ctx context.Context, id int64) (*models.Partner, error)
	CreatePartner(ctx context.Context, p *models.Partner) (int64, error)
	PolicyForm(ctx context.Context, partnerID int64) (*models.PolicyForm, error)
	AddPolicy(ctx context.Context, in models.PolicyInput) (int64, error)
}

type ReportExporter interface {
	ExportPartners(ctx context.Context) (*reports.Report, error)
}

type HTTPServer struct {
	address  string
	admin    Admin
	exporter ReportExporter
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	logger   logging.Logger
}

// NewHTTPServer builds the server. exporter may be nil when object storage is
// not configured; the report endpoint then answers 503.
func NewHTTPServer(a string, l logging.Logger, admin Admin, exporter ReportExporter, m *metrics.Metrics, g prometheus.Gatherer) *HTTPServer {
	return &HTTPServer{
		address:  a,
		admin:    admin,
		exporter: exporter,
		metrics:  m,
		gatherer: g,
		logger:   l.With("module", "http_server"),
	}
}

// Handler returns the routed API.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/partners", s.handleListPartners)
		r.Post("/partners", s.handleCreatePartner)
		r.Get("/partners/{id}", s.handleGetPartner)
		r.Get("/partners/{id}/policies/new", s.handlePolicyForm)
		r.Post("/partners/{id}/policies", s.handleAddPolicy)
		r.Post("/reports/partners", s.handleExportPartners)
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
