package partners

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/memstore"
)

// InMemoryRepository serves partners from a memstore.Store shared with the
// in-memory policy repository.
type InMemoryRepository struct {
	store *memstore.Store
}

func NewInMemoryRepository(store *memstore.Store) *InMemoryRepository {
	return &InMemoryRepository{store: store}
}

func (r *InMemoryRepository) ListSummaries(ctx context.Context) ([]*models.PartnerSummary, error) {
	partners := r.store.Partners()

	result := make([]*models.PartnerSummary, 0, len(partners))
	for _, p := range partners {
		result = append(result, p.Summary())
	}
	return result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*models.Partner, error) {
	p, ok := r.store.Partner(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (r *InMemoryRepository) GetWithPolicies(ctx context.Context, id int64) (*models.Partner, error) {
	p, ok := r.store.Partner(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.Policies = r.store.PoliciesOf(id)
	return p, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, p *models.Partner) (int64, error) {
	id, ok := r.store.InsertPartner(*p)
	if !ok {
		return 0, fmt.Errorf("partner %q: %w", p.ExternalCode, common.ErrDuplicateKey)
	}
	return id, nil
}

func (r *InMemoryRepository) ExistsByExternalCode(ctx context.Context, code string) (bool, error) {
	return r.store.HasExternalCode(code), nil
}
