package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/dmitrijs2005/policydesk/internal/logging"
	"github.com/dmitrijs2005/policydesk/internal/server/config"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/policydesk/internal/server/seed"
)

// Seeds the database named by -d (or the JSON config) with demo partners.
func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	if cfg.InMemory() {
		log.Fatalf("seed needs a database DSN, got %q", cfg.DatabaseDSN)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	res, err := seed.Seed(ctx, db, rm, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger.Info(ctx, "Seed complete", "partners", res.Partners, "policies", res.Policies, "skipped", res.Skipped)
}
