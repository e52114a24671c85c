package partners

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var (
	summaryColumns = []string{"id", "first_name", "last_name", "partner_number", "croatian_pin", "partner_type_id",
		"created_at_utc", "is_foreign", "gender", "policy_count", "total_amount", "requires_highlight"}
	detailColumns = []string{"id", "first_name", "last_name", "address", "partner_number", "croatian_pin",
		"partner_type_id", "created_at_utc", "created_by_user", "is_foreign", "external_code", "gender"}
	joinedColumns = append(append([]string{}, detailColumns...), "id", "policy_number", "amount", "created_at_utc")
)

const (
	qSummaries = `(?s)^SELECT\s+p\.id,.*COUNT\(pol\.id\)\s+AS\s+policy_count,\s*COALESCE\(SUM\(pol\.amount\),\s*0\)\s+AS\s+total_amount,.*` +
		`FROM\s+partners\s+p\s+LEFT\s+JOIN\s+policies\s+pol\s+ON\s+pol\.partner_id\s*=\s*p\.id\s+GROUP\s+BY\s+p\.id\s+ORDER\s+BY\s+p\.created_at_utc\s+DESC`
	qByID         = `(?s)^SELECT\s+p\.id,.*FROM\s+partners\s+p\s+WHERE\s+p\.id\s*=\s*\$1\s*$`
	qWithPolicies = `(?s)^SELECT\s+p\.id,.*pol\.id,\s*pol\.policy_number,\s*pol\.amount,\s*pol\.created_at_utc\s+FROM\s+partners\s+p\s+LEFT\s+JOIN\s+policies\s+pol.*WHERE\s+p\.id\s*=\s*\$1\s+ORDER\s+BY\s+pol\.id\s*$`
	qInsert       = `(?s)^INSERT\s+INTO\s+partners\s*\(first_name,.*gender\)\s*VALUES\s*\(\$1,.*\$11\)\s*RETURNING\s+id\s*$`
	qExists       = `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+partners\s+WHERE\s+external_code\s*=\s*\$1\)\s*$`
)

var created = time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

func TestListSummaries_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(summaryColumns).
		AddRow(int64(2), "Ana", "Horvat", "12345678901234567890", nil, 2, created, true, "F", int64(0), "0", false).
		AddRow(int64(1), "John", "Doe", "09876543210987654321", "12345678901", 1, created, false, "M", int64(6), "600.00", true)
	mock.ExpectQuery(qSummaries).
		WithArgs(models.HighlightPolicyCount, models.HighlightAmount).
		WillReturnRows(rows)

	got, err := repo.ListSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Ana Horvat", got[0].FullName)
	assert.Nil(t, got[0].NationalPIN)
	assert.Equal(t, models.PartnerTypeBusiness, got[0].PartnerType)
	assert.Equal(t, models.GenderFemale, got[0].Gender)
	assert.Equal(t, 0, got[0].PolicyCount)
	assert.True(t, got[0].TotalPolicyAmount.IsZero())
	assert.False(t, got[0].RequiresHighlight)

	require.NotNil(t, got[1].NationalPIN)
	assert.Equal(t, "12345678901", *got[1].NationalPIN)
	assert.Equal(t, 6, got[1].PolicyCount)
	assert.True(t, got[1].TotalPolicyAmount.Equal(decimal.NewFromInt(600)))
	assert.True(t, got[1].RequiresHighlight)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSummaries_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSummaries).WillReturnRows(sqlmock.NewRows(summaryColumns))

	got, err := repo.ListSummaries(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListSummaries_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSummaries).WillReturnError(errors.New("db down"))

	_, err := repo.ListSummaries(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListSummaries_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(summaryColumns).
		AddRow("not-an-id", "Ana", "Horvat", "12345678901234567890", nil, 2, created, true, "F", int64(0), "0", false)
	mock.ExpectQuery(qSummaries).WillReturnRows(rows)

	_, err := repo.ListSummaries(context.Background())
	assert.Error(t, err)
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(detailColumns).
		AddRow(int64(7), "John", "Doe", "Ilica 1", "12345678901234567890", nil, 1, created,
			"test@example.com", false, "EXT-0000000007", "M")
	mock.ExpectQuery(qByID).WithArgs(int64(7)).WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Ilica 1", *got.Address)
	assert.Nil(t, got.NationalPIN)
	assert.Equal(t, "EXT-0000000007", got.ExternalCode)
	assert.Equal(t, "test@example.com", got.CreatedByUserEmail)
	assert.Nil(t, got.Policies)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qByID).WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetWithPolicies_CollapsesJoinedRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	partner := []driver.Value{int64(3), "John", "Doe", nil, "12345678901234567890", "12345678901", 1, created,
		"test@example.com", false, "EXT-0000000003", "M"}
	row := func(policy ...driver.Value) []driver.Value {
		return append(append([]driver.Value{}, partner...), policy...)
	}

	rows := sqlmock.NewRows(joinedColumns).
		AddRow(row(int64(10), "POL-0000000010", "2500.00", created)...).
		AddRow(row(int64(11), "POL-0000000011", "3500.00", created)...)
	mock.ExpectQuery(qWithPolicies).WithArgs(int64(3)).WillReturnRows(rows)

	got, err := repo.GetWithPolicies(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	require.Len(t, got.Policies, 2)
	assert.Equal(t, "POL-0000000010", got.Policies[0].PolicyNumber)
	assert.Equal(t, int64(3), got.Policies[1].PartnerID)
	assert.True(t, got.TotalPolicyAmount().Equal(decimal.NewFromInt(6000)))
	assert.True(t, got.RequiresHighlight())
}

func TestGetWithPolicies_NoPolicies(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(joinedColumns).
		AddRow(int64(4), "Ana", "Horvat", nil, "12345678901234567890", nil, 2, created,
			"test@example.com", true, "EXT-0000000004", "F", nil, nil, nil, nil)
	mock.ExpectQuery(qWithPolicies).WithArgs(int64(4)).WillReturnRows(rows)

	got, err := repo.GetWithPolicies(context.Background(), 4)
	require.NoError(t, err)
	assert.NotNil(t, got.Policies)
	assert.Empty(t, got.Policies)
	assert.Equal(t, 0, got.PolicyCount())
}

func TestGetWithPolicies_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qWithPolicies).WithArgs(int64(5)).WillReturnRows(sqlmock.NewRows(joinedColumns))

	_, err := repo.GetWithPolicies(context.Background(), 5)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetWithPolicies_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qWithPolicies).WithArgs(int64(5)).WillReturnError(errors.New("boom"))

	_, err := repo.GetWithPolicies(context.Background(), 5)
	if err == nil || !regexp.MustCompile(`db error: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	pin := "12345678901"
	p := newPartner("EXT-0000000001", created)
	p.NationalPIN = &pin

	mock.ExpectQuery(qInsert).
		WithArgs("John", "Doe", nil, "12345678901234567890", pin, 1, created, "test@example.com", false, "EXT-0000000001", "M").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "partners_external_code_key"})

	_, err := repo.Create(context.Background(), newPartner("EXT-0000000001", created))
	assert.ErrorIs(t, err, common.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "partners_external_code_key")
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), newPartner("EXT-0000000001", created))
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "db error")
}

func TestExistsByExternalCode(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qExists).WithArgs("EXT-0000000001").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(qExists).WithArgs("EXT-0000000002").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(qExists).WithArgs("EXT-0000000003").
		WillReturnError(errors.New("db down"))

	ok, err := repo.ExistsByExternalCode(context.Background(), "EXT-0000000001")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByExternalCode(context.Background(), "EXT-0000000002")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.ExistsByExternalCode(context.Background(), "EXT-0000000003")
	assert.Error(t, err)
}
