package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/rpc"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) ListPartners(ctx context.Context, req *rpc.ListPartnersRequest) (*rpc.ListPartnersResponse, error) {

	list, err := s.admin.ListPartners(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.ListPartnersResponse{Partners: list}, nil
}

func (s *GRPCServer) GetPartner(ctx context.Context, req *rpc.GetPartnerRequest) (*rpc.GetPartnerResponse, error) {

	if req.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid partner id")
	}

	p, err := s.admin.GetPartner(ctx, req.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.GetPartnerResponse{Partner: p}, nil
}

func (s *GRPCServer) CreatePartner(ctx context.Context, req *rpc.CreatePartnerRequest) (*rpc.CreatePartnerResponse, error) {

	p := &models.Partner{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Address:            req.Address,
		PartnerNumber:      req.PartnerNumber,
		NationalPIN:        req.NationalPIN,
		PartnerType:        req.PartnerType,
		CreatedByUserEmail: req.CreatedByUserEmail,
		ExternalCode:       req.ExternalCode,
		Gender:             req.Gender,
	}
	if req.IsForeign != nil {
		p.IsForeign = *req.IsForeign
	}
	p.Normalize()

	if msg := validation.IsForeign(req.IsForeign); msg != "" {
		errs := append(validation.Single(validation.FieldIsForeign, msg), validation.Partner(p)...)
		return nil, s.toStatus(ctx, errs)
	}

	id, err := s.admin.CreatePartner(ctx, p)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.CreatePartnerResponse{ID: id}, nil
}

func (s *GRPCServer) AddPolicy(ctx context.Context, req *rpc.AddPolicyRequest) (*rpc.AddPolicyResponse, error) {

	id, err := s.admin.AddPolicy(ctx, models.PolicyInput{
		PartnerID:    req.PartnerID,
		PolicyNumber: strings.TrimSpace(req.PolicyNumber),
		Amount:       req.Amount,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.AddPolicyResponse{ID: id}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *rpc.PingRequest) (*rpc.PingResponse, error) {

	return &rpc.PingResponse{Status: "OK"}, nil

}

// toStatus maps workflow errors to gRPC codes. Field errors are also sent as
// a JSON trailer so clients can show them per field.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if errs, ok := validation.As(err); ok {
		if data, mErr := json.Marshal(errs); mErr == nil {
			_ = grpc.SetTrailer(ctx, metadata.Pairs(rpc.FieldErrorsTrailer, string(data)))
		}
		return status.Error(codes.InvalidArgument, errs.Error())
	}
	if errors.Is(err, common.ErrorNotFound) {
		return status.Error(codes.NotFound, "partner not found")
	}

	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}
