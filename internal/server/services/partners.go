// Package services contains server-side business logic. PartnerService and
// PolicyService wrap the repositories; AdminService runs the operator
// workflows on top of them.
package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/repomanager"
)

type PartnerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewPartnerService(db *sql.DB, m repomanager.RepositoryManager) *PartnerService {
	return &PartnerService{db: db, repomanager: m, now: time.Now}
}

func (s *PartnerService) ListSummaries(ctx context.Context) ([]*models.PartnerSummary, error) {
	return s.repomanager.Partners(s.db).ListSummaries(ctx)
}

func (s *PartnerService) GetByID(ctx context.Context, id int64) (*models.Partner, error) {
	return s.repomanager.Partners(s.db).GetByID(ctx, id)
}

func (s *PartnerService) GetWithPolicies(ctx context.Context, id int64) (*models.Partner, error) {
	return s.repomanager.Partners(s.db).GetWithPolicies(ctx, id)
}

func (s *PartnerService) ExistsByExternalCode(ctx context.Context, code string) (bool, error) {
	return s.repomanager.Partners(s.db).ExistsByExternalCode(ctx, code)
}

// Create stamps the creation time and stores p. Any id on p is ignored.
func (s *PartnerService) Create(ctx context.Context, p *models.Partner) (int64, error) {
	p.CreatedAtUTC = s.now().UTC()
	return s.repomanager.Partners(s.db).Create(ctx, p)
}
