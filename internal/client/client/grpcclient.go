package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/rpc"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/validation"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      rpc.PartnerAdminClient
}

func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}

	id, err := common.MakeRandHexString(8)
	if err != nil {
		return ctx
	}

	return metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, id)
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewPartnerAdminClient dials endpointURL lazily; the first call establishes
// the connection. A timeout of zero leaves calls bounded only by ctx.
func NewPartnerAdminClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(requestIDInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewPartnerAdminClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &rpc.PingRequest{})
	if err != nil {
		return s.mapError(err, nil)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) ListPartners(ctx context.Context) ([]*models.PartnerSummary, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListPartners(ctx, &rpc.ListPartnersRequest{})
	if err != nil {
		return nil, s.mapError(err, nil)
	}

	return resp.Partners, nil
}

func (s *GRPCClient) GetPartner(ctx context.Context, id int64) (*models.Partner, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var trailer metadata.MD
	resp, err := s.client.GetPartner(ctx, &rpc.GetPartnerRequest{ID: id}, grpc.Trailer(&trailer))
	if err != nil {
		return nil, s.mapError(err, trailer)
	}

	return resp.Partner, nil
}

func (s *GRPCClient) AddPolicy(ctx context.Context, partnerID int64, policyNumber string, amount decimal.Decimal) (int64, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &rpc.AddPolicyRequest{PartnerID: partnerID, PolicyNumber: policyNumber, Amount: amount}

	var trailer metadata.MD
	resp, err := s.client.AddPolicy(ctx, req, grpc.Trailer(&trailer))
	if err != nil {
		return 0, s.mapError(err, trailer)
	}

	return resp.ID, nil
}

// mapError turns a gRPC status into a sentinel error. For InvalidArgument the
// field errors trailer is decoded into validation.Errors when present.
func (s *GRPCClient) mapError(err error, trailer metadata.MD) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		if v := trailer.Get(rpc.FieldErrorsTrailer); len(v) > 0 {
			var errs validation.Errors
			if json.Unmarshal([]byte(v[0]), &errs) == nil && len(errs) > 0 {
				return errs
			}
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
