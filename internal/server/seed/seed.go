// Package seed loads a small demo data set: a few partners, two of which
// cross the highlight thresholds, one by policy count and one by amount.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/policydesk/internal/dbx"
	"github.com/dmitrijs2005/policydesk/internal/logging"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/policydesk/internal/server/validation"
	"github.com/shopspring/decimal"
)

type demoPartner struct {
	partner  models.Partner
	policies []models.PolicyInput
}

func stringPtr(s string) *string {
	return &s
}

func policySeries(prefix string, n int, amount string) []models.PolicyInput {
	out := make([]models.PolicyInput, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.PolicyInput{
			PolicyNumber: fmt.Sprintf("%s-%06d", prefix, i),
			Amount:       decimal.RequireFromString(amount),
		})
	}
	return out
}

func demoData() []demoPartner {
	return []demoPartner{
		{
			partner: models.Partner{
				FirstName:          "Ana",
				LastName:           "Horvat",
				Address:            stringPtr("Ilica 1, Zagreb"),
				PartnerNumber:      "10000000000000000001",
				NationalPIN:        stringPtr("12345678901"),
				PartnerType:        models.PartnerTypePersonal,
				CreatedByUserEmail: "seed@policydesk.local",
				ExternalCode:       "DEMO-000001",
				Gender:             models.GenderFemale,
			},
			policies: policySeries("DEMO-ANA", 2, "250.00"),
		},
		{
			partner: models.Partner{
				FirstName:          "Marko",
				LastName:           "Kovac",
				PartnerNumber:      "10000000000000000002",
				PartnerType:        models.PartnerTypePersonal,
				CreatedByUserEmail: "seed@policydesk.local",
				ExternalCode:       "DEMO-000002",
				Gender:             models.GenderMale,
			},
			policies: policySeries("DEMO-MAR", 6, "100.00"),
		},
		{
			partner: models.Partner{
				FirstName:          "Acme",
				LastName:           "Logistics",
				Address:            stringPtr("Harbour Rd 7, Rijeka"),
				PartnerNumber:      "10000000000000000003",
				PartnerType:        models.PartnerTypeBusiness,
				CreatedByUserEmail: "seed@policydesk.local",
				IsForeign:          true,
				ExternalCode:       "DEMO-000003",
				Gender:             models.GenderUnspecified,
			},
			policies: policySeries("DEMO-ACM", 2, "3000.00"),
		},
		{
			partner: models.Partner{
				FirstName:          "Iva",
				LastName:           "Novak",
				PartnerNumber:      "10000000000000000004",
				PartnerType:        models.PartnerTypePersonal,
				CreatedByUserEmail: "seed@policydesk.local",
				ExternalCode:       "DEMO-000004",
				Gender:             models.GenderFemale,
			},
		},
	}
}

// Result counts what a Seed call inserted.
type Result struct {
	Partners int
	Policies int
	Skipped  int
}

// Seed inserts the demo data in one transaction. Partners whose external code
// already exists are skipped with their policies, so repeated runs are
// harmless. Any failure rolls the whole batch back.
func Seed(ctx context.Context, db *sql.DB, rm repomanager.RepositoryManager, log logging.Logger) (Result, error) {
	var res Result
	now := time.Now().UTC()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		partnersRepo := rm.Partners(tx)
		policiesRepo := rm.Policies(tx)

		for _, d := range demoData() {
			p := d.partner

			if errs := validation.Partner(&p); len(errs) > 0 {
				return fmt.Errorf("demo partner %s: %w", p.ExternalCode, errs)
			}

			exists, err := partnersRepo.ExistsByExternalCode(ctx, p.ExternalCode)
			if err != nil {
				return err
			}
			if exists {
				log.Info(ctx, "Partner already exists", "external_code", p.ExternalCode)
				res.Skipped++
				continue
			}

			p.CreatedAtUTC = now
			id, err := partnersRepo.Create(ctx, &p)
			if err != nil {
				return err
			}
			res.Partners++

			for _, in := range d.policies {
				in.PartnerID = id
				if errs := validation.Policy(in); len(errs) > 0 {
					return fmt.Errorf("demo policy %s: %w", in.PolicyNumber, errs)
				}
				if _, err := policiesRepo.Create(ctx, &models.Policy{
					PartnerID:    id,
					PolicyNumber: in.PolicyNumber,
					Amount:       in.Amount,
					CreatedAtUTC: now,
				}); err != nil {
					return err
				}
				res.Policies++
			}

			log.Info(ctx, "Seeded partner", "id", id, "external_code", p.ExternalCode, "policies", len(d.policies))
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed error: %w", err)
	}

	return res, nil
}
