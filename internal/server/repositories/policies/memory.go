package policies

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/memstore"
)

type InMemoryRepository struct {
	store *memstore.Store
}

func NewInMemoryRepository(store *memstore.Store) *InMemoryRepository {
	return &InMemoryRepository{store: store}
}

func (r *InMemoryRepository) ListByPartnerID(ctx context.Context, partnerID int64) ([]*models.Policy, error) {
	return r.store.PoliciesOf(partnerID), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, p *models.Policy) (int64, error) {
	id, found, ok := r.store.InsertPolicy(*p)
	if !found {
		return 0, fmt.Errorf("partner %d: %w", p.PartnerID, common.ErrorNotFound)
	}
	if !ok {
		return 0, fmt.Errorf("policy %q: %w", p.PolicyNumber, common.ErrDuplicateKey)
	}
	return id, nil
}

func (r *InMemoryRepository) ExistsByPolicyNumber(ctx context.Context, number string) (bool, error) {
	return r.store.HasPolicyNumber(number), nil
}
