package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCaseRepositoryCreateAllocatesReference(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCaseRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT nextval('disciplinary_case_reference_seq')")).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(42))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO disciplinary_cases (id, reference, employee_id")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	c := &models.DisciplinaryCase{
		EmployeeID:   "emp-1",
		IncidentDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ReportedDate: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
		State:        models.CaseStateNotified,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	require.NotEmpty(t, c.ID)
	require.Regexp(t, `^DC/\d{4}/00042$`, c.Reference)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseRepositoryListCountsAndFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCaseRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM disciplinary_cases WHERE (employee_id = $1 AND state IN ($2,$3))")).
		WithArgs("emp-1", "notified", "hearing").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	rows := sqlmock.NewRows([]string{"id", "reference", "employee_id", "state", "acknowledgment_state"}).
		AddRow("case-1", "DC/2024/00001", "emp-1", "notified", "pending")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY incident_date ASC, reference ASC LIMIT 2 OFFSET 2")).
		WithArgs("emp-1", "notified", "hearing").
		WillReturnRows(rows)

	cases, total, err := repo.List(context.Background(), models.CaseFilter{
		EmployeeID: "emp-1",
		States:     []models.CaseState{models.CaseStateNotified, models.CaseStateHearing},
		Page:       2,
		PageSize:   2,
		SortBy:     "incident_date",
		SortOrder:  "asc",
	})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, cases, 1)
	require.Equal(t, models.CaseStateNotified, cases[0].State)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseRepositoryListIgnoresUnknownSort(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCaseRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM disciplinary_cases")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY reported_date DESC, reference DESC LIMIT 50 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := repo.List(context.Background(), models.CaseFilter{SortBy: "1; DROP TABLE"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseRepositoryCountPriorWarnings(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCaseRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM disciplinary_cases\nWHERE employee_id = $1 AND state = 'closed' AND id::text <> $2")).
		WithArgs("emp-1", "case-9").
		WillReturnRows(sqlmock.NewRows([]string{"verbal", "written", "final"}).AddRow(2, 1, 0))

	counts, err := repo.CountPriorWarnings(context.Background(), "emp-1", "case-9")
	require.NoError(t, err)
	require.Equal(t, models.WarningCounts{Verbal: 2, Written: 1}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCaseRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM disciplinary_cases WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseRepositoryUpdateSkipsCreationColumns(t *testing.T) {
	query := updateQuery("disciplinary_cases", caseColumns)
	require.NotContains(t, query, "created_by =")
	require.NotContains(t, query, "created_at =")
	require.Contains(t, query, "state = :state")
	require.True(t, regexp.MustCompile(`WHERE id = :id$`).MatchString(query))
}
