package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/logging"
	"github.com/dmitrijs2005/policydesk/internal/server/metrics"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/validation"
)

// AdminService runs the operator workflows shared by the HTTP and gRPC
// front ends: validate, pre-check uniqueness, create, and report a lost
// uniqueness race the same way as a failed pre-check.
type AdminService struct {
	partners *PartnerService
	policies *PolicyService
	metrics  *metrics.Metrics
	logger   logging.Logger
}

func NewAdminService(partners *PartnerService, policies *PolicyService, m *metrics.Metrics, logger logging.Logger) *AdminService {
	return &AdminService{partners: partners, policies: policies, metrics: m, logger: logger.With("module", "admin")}
}

func (s *AdminService) ListPartners(ctx context.Context) ([]*models.PartnerSummary, error) {
	list, err := s.partners.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	highlighted := 0
	for _, p := range list {
		if p.RequiresHighlight {
			highlighted++
		}
	}
	s.metrics.SetHighlighted(highlighted)
	return list, nil
}

func (s *AdminService) GetPartner(ctx context.Context, id int64) (*models.Partner, error) {
	return s.partners.GetWithPolicies(ctx, id)
}

// CreatePartner returns validation.Errors for bad input or a taken external
// code.
func (s *AdminService) CreatePartner(ctx context.Context, p *models.Partner) (int64, error) {
	if errs := validation.Partner(p); len(errs) > 0 {
		return 0, s.rejected(opCreatePartner, errs)
	}

	exists, err := s.partners.ExistsByExternalCode(ctx, p.ExternalCode)
	if err != nil {
		return 0, fmt.Errorf("check external code: %w", err)
	}
	if exists {
		return 0, s.rejected(opCreatePartner, validation.Single(validation.FieldExternalCode, validation.MsgExternalCodeTaken))
	}

	id, err := s.partners.Create(ctx, p)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			s.logger.Warn(ctx, "external code taken after pre-check", "external_code", p.ExternalCode)
			return 0, s.rejected(opCreatePartner, validation.Single(validation.FieldExternalCode, validation.MsgExternalCodeTaken))
		}
		return 0, fmt.Errorf("create partner: %w", err)
	}

	s.metrics.IncrementPartnersCreated()
	s.logger.Info(ctx, "partner created", "id", id, "external_code", p.ExternalCode)
	return id, nil
}

// PolicyForm returns the empty add-policy form for the partner, or
// common.ErrorNotFound.
func (s *AdminService) PolicyForm(ctx context.Context, partnerID int64) (*models.PolicyForm, error) {
	p, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return &models.PolicyForm{PartnerID: p.ID, PartnerName: p.FullName()}, nil
}

// AddPolicy returns common.ErrorNotFound for an unknown partner and
// validation.Errors for bad input or a taken policy number.
func (s *AdminService) AddPolicy(ctx context.Context, in models.PolicyInput) (int64, error) {
	if errs := validation.Policy(in); len(errs) > 0 {
		return 0, s.rejected(opAddPolicy, errs)
	}

	if _, err := s.partners.GetByID(ctx, in.PartnerID); err != nil {
		return 0, err
	}

	exists, err := s.policies.ExistsByPolicyNumber(ctx, in.PolicyNumber)
	if err != nil {
		return 0, fmt.Errorf("check policy number: %w", err)
	}
	if exists {
		return 0, s.rejected(opAddPolicy, validation.Single(validation.FieldPolicyNumber, validation.MsgPolicyNumberTaken))
	}

	id, err := s.policies.Create(ctx, in)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			s.logger.Warn(ctx, "policy number taken after pre-check", "policy_number", in.PolicyNumber)
			return 0, s.rejected(opAddPolicy, validation.Single(validation.FieldPolicyNumber, validation.MsgPolicyNumberTaken))
		}
		return 0, fmt.Errorf("add policy: %w", err)
	}

	s.metrics.IncrementPoliciesAdded()
	s.logger.Info(ctx, "policy added", "id", id, "partner_id", in.PartnerID)
	return id, nil
}

const (
	opCreatePartner = "create_partner"
	opAddPolicy     = "add_policy"
)

func (s *AdminService) rejected(op string, errs validation.Errors) error {
	for _, fe := range errs {
		s.metrics.IncrementRejected(op, fe.Field)
	}
	return errs
}
