// Package repomanager provides RepositoryManager implementations: one for
// PostgreSQL, wiring repository constructors and goose migrations, and one
// backed by process memory.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/policydesk/internal/dbx"
	"github.com/dmitrijs2005/policydesk/internal/server/migrations"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/partners"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/policies"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Partners returns a partners.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Partners(db dbx.DBTX) partners.Repository {
	return partners.NewPostgresRepository(db)
}

// Policies returns a policies.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Policies(db dbx.DBTX) policies.Repository {
	return policies.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema. Already applied versions are
// skipped, so it is safe on every start.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
