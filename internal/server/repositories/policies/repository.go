package policies

import (
	"context"

	"github.com/dmitrijs2005/policydesk/internal/server/models"
)

type Repository interface {
	ListByPartnerID(ctx context.Context, partnerID int64) ([]*models.Policy, error)
	Create(ctx context.Context, p *models.Policy) (int64, error)
	ExistsByPolicyNumber(ctx context.Context, number string) (bool, error)
}
