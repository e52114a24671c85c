package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/policydesk/internal/dbx"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/partners"
	"github.com/dmitrijs2005/policydesk/internal/server/repositories/policies"
)

type fakePartnersRepo struct {
	summaries []*models.PartnerSummary
	partner   *models.Partner
	getErr    error

	exists    bool
	existsErr error

	created   *models.Partner
	createID  int64
	createErr error
}

func (f *fakePartnersRepo) ListSummaries(context.Context) ([]*models.PartnerSummary, error) {
	return f.summaries, nil
}

func (f *fakePartnersRepo) GetByID(context.Context, int64) (*models.Partner, error) {
	return f.partner, f.getErr
}

func (f *fakePartnersRepo) GetWithPolicies(context.Context, int64) (*models.Partner, error) {
	return f.partner, f.getErr
}

func (f *fakePartnersRepo) Create(_ context.Context, p *models.Partner) (int64, error) {
	f.created = p
	return f.createID, f.createErr
}

func (f *fakePartnersRepo) ExistsByExternalCode(context.Context, string) (bool, error) {
	return f.exists, f.existsErr
}

type fakePoliciesRepo struct {
	list []*models.Policy

	exists    bool
	existsErr error

	created   *models.Policy
	createID  int64
	createErr error
}

func (f *fakePoliciesRepo) ListByPartnerID(context.Context, int64) ([]*models.Policy, error) {
	return f.list, nil
}

func (f *fakePoliciesRepo) Create(_ context.Context, p *models.Policy) (int64, error) {
	f.created = p
	return f.createID, f.createErr
}

func (f *fakePoliciesRepo) ExistsByPolicyNumber(context.Context, string) (bool, error) {
	return f.exists, f.existsErr
}

type fakeRM struct {
	partners *fakePartnersRepo
	policies *fakePoliciesRepo
}

func (f *fakeRM) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRM) Partners(dbx.DBTX) partners.Repository       { return f.partners }
func (f *fakeRM) Policies(dbx.DBTX) policies.Repository       { return f.policies }

func newFakeRM() *fakeRM {
	return &fakeRM{partners: &fakePartnersRepo{}, policies: &fakePoliciesRepo{}}
}
