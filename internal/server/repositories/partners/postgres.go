package partners

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/dbx"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListSummaries(ctx context.Context) ([]*models.PartnerSummary, error) {
	query :=
		`SELECT p.id, p.first_name, p.last_name, p.partner_number, p.croatian_pin, p.partner_type_id,
		        p.created_at_utc, p.is_foreign, p.gender,
		        COUNT(pol.id) AS policy_count,
		        COALESCE(SUM(pol.amount), 0) AS total_amount,
		        (COUNT(pol.id) > $1 OR COALESCE(SUM(pol.amount), 0) > $2) AS requires_highlight
		 FROM partners p
		 LEFT JOIN policies pol ON pol.partner_id = p.id
		 GROUP BY p.id
		 ORDER BY p.created_at_utc DESC, p.id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, models.HighlightPolicyCount, models.HighlightAmount)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.PartnerSummary{}
	for rows.Next() {
		var (
			s         models.PartnerSummary
			firstName string
			lastName  string
			pin       sql.NullString
			gender    string
		)
		if err := rows.Scan(&s.ID, &firstName, &lastName, &s.PartnerNumber, &pin, &s.PartnerType,
			&s.CreatedAtUTC, &s.IsForeign, &gender,
			&s.PolicyCount, &s.TotalPolicyAmount, &s.RequiresHighlight); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		s.FullName = firstName + " " + lastName
		s.NationalPIN = nullString(pin)
		s.Gender = models.Gender(gender)
		s.CreatedAtUTC = s.CreatedAtUTC.UTC()
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

const partnerColumns = `p.id, p.first_name, p.last_name, p.address, p.partner_number, p.croatian_pin,
		        p.partner_type_id, p.created_at_utc, p.created_by_user, p.is_foreign, p.external_code, p.gender`

// partnerRow holds the nullable columns of a partner until they are copied
// into the model.
type partnerRow struct {
	p       models.Partner
	address sql.NullString
	pin     sql.NullString
	gender  string
}

func (pr *partnerRow) dest() []any {
	return []any{&pr.p.ID, &pr.p.FirstName, &pr.p.LastName, &pr.address, &pr.p.PartnerNumber, &pr.pin,
		&pr.p.PartnerType, &pr.p.CreatedAtUTC, &pr.p.CreatedByUserEmail, &pr.p.IsForeign, &pr.p.ExternalCode, &pr.gender}
}

func (pr *partnerRow) model() *models.Partner {
	p := pr.p
	p.Address = nullString(pr.address)
	p.NationalPIN = nullString(pr.pin)
	p.Gender = models.Gender(pr.gender)
	p.CreatedAtUTC = p.CreatedAtUTC.UTC()
	return &p
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Partner, error) {
	query :=
		`SELECT ` + partnerColumns + `
		 FROM partners p
		 WHERE p.id = $1
		 `

	var row partnerRow
	err := r.db.QueryRowContext(ctx, query, id).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return row.model(), nil
}

// GetWithPolicies loads the partner and its policies in one round trip and
// folds the joined rows into a single partner.
func (r *PostgresRepository) GetWithPolicies(ctx context.Context, id int64) (*models.Partner, error) {
	query :=
		`SELECT ` + partnerColumns + `,
		        pol.id, pol.policy_number, pol.amount, pol.created_at_utc
		 FROM partners p
		 LEFT JOIN policies pol ON pol.partner_id = p.id
		 WHERE p.id = $1
		 ORDER BY pol.id
		 `

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	byID := map[int64]*models.Partner{}
	for rows.Next() {
		var (
			row          partnerRow
			policyID     sql.NullInt64
			policyNumber sql.NullString
			amount       decimal.NullDecimal
			policyAt     sql.NullTime
		)
		dest := append(row.dest(), &policyID, &policyNumber, &amount, &policyAt)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		partner, ok := byID[row.p.ID]
		if !ok {
			partner = row.model()
			partner.Policies = []*models.Policy{}
			byID[partner.ID] = partner
		}

		if policyID.Valid {
			partner.Policies = append(partner.Policies, &models.Policy{
				ID:           policyID.Int64,
				PartnerID:    partner.ID,
				PolicyNumber: policyNumber.String,
				Amount:       amount.Decimal,
				CreatedAtUTC: policyAt.Time.UTC(),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	partner, ok := byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return partner, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Partner) (int64, error) {
	query :=
		`INSERT INTO partners (first_name, last_name, address, partner_number, croatian_pin, partner_type_id,
		                       created_at_utc, created_by_user, is_foreign, external_code, gender)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		p.FirstName, p.LastName, p.Address, p.PartnerNumber, p.NationalPIN, int(p.PartnerType),
		p.CreatedAtUTC, p.CreatedByUserEmail, p.IsForeign, p.ExternalCode, string(p.Gender)).Scan(&id)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, fmt.Errorf("partner %q violates %s: %w", p.ExternalCode, dbx.ConstraintName(err), common.ErrDuplicateKey)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) ExistsByExternalCode(ctx context.Context, code string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM partners WHERE external_code = $1)
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
