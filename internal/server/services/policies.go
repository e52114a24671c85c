package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/repomanager"
)

type PolicyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewPolicyService(db *sql.DB, m repomanager.RepositoryManager) *PolicyService {
	return &PolicyService{db: db, repomanager: m, now: time.Now}
}

// Create stores a policy built from in. The owning partner is not looked up
// here; a missing one surfaces as the store's foreign key error.
func (s *PolicyService) Create(ctx context.Context, in models.PolicyInput) (int64, error) {
	p := &models.Policy{
		PartnerID:    in.PartnerID,
		PolicyNumber: in.PolicyNumber,
		Amount:       in.Amount,
		CreatedAtUTC: s.now().UTC(),
	}
	return s.repomanager.Policies(s.db).Create(ctx, p)
}

func (s *PolicyService) ExistsByPolicyNumber(ctx context.Context, number string) (bool, error) {
	return s.repomanager.Policies(s.db).ExistsByPolicyNumber(ctx, number)
}

func (s *PolicyService) ListByPartnerID(ctx context.Context, partnerID int64) ([]*models.Policy, error) {
	return s.repomanager.Policies(s.db).ListByPartnerID(ctx, partnerID)
}
