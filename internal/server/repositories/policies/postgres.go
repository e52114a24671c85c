package policies

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/dbx"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByPartnerID(ctx context.Context, partnerID int64) ([]*models.Policy, error) {
	query :=
		`SELECT id, partner_id, policy_number, amount, created_at_utc FROM policies
		 WHERE partner_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Policy{}
	for rows.Next() {
		p := &models.Policy{}
		if err := rows.Scan(&p.ID, &p.PartnerID, &p.PolicyNumber, &p.Amount, &p.CreatedAtUTC); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		p.CreatedAtUTC = p.CreatedAtUTC.UTC()
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Create inserts p. A taken policy number yields common.ErrDuplicateKey and
// a missing partner yields common.ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Policy) (int64, error) {
	query :=
		`INSERT INTO policies (partner_id, policy_number, amount, created_at_utc)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, p.PartnerID, p.PolicyNumber, p.Amount, p.CreatedAtUTC).Scan(&id)
	if err != nil {
		switch {
		case dbx.IsUniqueViolation(err):
			return 0, fmt.Errorf("policy %q violates %s: %w", p.PolicyNumber, dbx.ConstraintName(err), common.ErrDuplicateKey)
		case dbx.IsForeignKeyViolation(err):
			return 0, fmt.Errorf("partner %d (%s): %w", p.PartnerID, dbx.ConstraintName(err), common.ErrorNotFound)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) ExistsByPolicyNumber(ctx context.Context, number string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM policies WHERE policy_number = $1)
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
