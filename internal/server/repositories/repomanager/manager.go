package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/policydesk/internal/dbx"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/partners"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/policies"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Partners(db dbx.DBTX) partners.Repository
	Policies(db dbx.DBTX) policies.Repository
}
