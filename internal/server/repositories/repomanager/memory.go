package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/policydesk/internal/dbx"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/memstore"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/partners"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/policies"
)

// InMemoryRepositoryManager serves every repository from one shared store.
// The DBTX arguments are ignored.
type InMemoryRepositoryManager struct {
	store *memstore.Store
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{store: memstore.New()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Partners(dbx.DBTX) partners.Repository {
	return partners.NewInMemoryRepository(m.store)
}

func (m *InMemoryRepositoryManager) Policies(dbx.DBTX) policies.Repository {
	return policies.NewInMemoryRepository(m.store)
}
