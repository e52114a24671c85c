// Package grpc serves the PartnerAdmin API declared in internal/rpc.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/policydesk/internal/logging"
	"github.com/dmitrijs2005/policydesk/internal/rpc"
	"github.com/dmitrijs2005/policydesk/internal/server/metrics"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"google.golang.org/grpc"
)

type Admin interface {
	ListPartners(ctx context.Context) ([]*models.PartnerSummary, error)
	GetPartner(ctx context.Context, id int64) (*models.Partner, error)
	CreatePartner(ctx context.Context, p *models.Partner) (int64, error)
	AddPolicy(ctx context.Context, in models.PolicyInput) (int64, error)
}

type GRPCServer struct {
	address string
	admin   Admin
	metrics *metrics.Metrics
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, admin Admin, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address: a,
		admin:   admin,
		metrics: m,
		logger:  l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.loggingInterceptor))
	rpc.RegisterPartnerAdminServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
