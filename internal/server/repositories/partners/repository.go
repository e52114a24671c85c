package partners

import (
	"context"

	"github.com/dmitrijs2005/policydesk/internal/server/models"
)

type Repository interface {
	ListSummaries(ctx context.Context) ([]*models.PartnerSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Partner, error)
	GetWithPolicies(ctx context.Context, id int64) (*models.Partner, error)
	Create(ctx context.Context, p *models.Partner) (int64, error)
	ExistsByExternalCode(ctx context.Context, code string) (bool, error)
}
