package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

func TestResignationRepositoryCreateAllocatesReference(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResignationRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT nextval('resignation_reference_seq')")).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO resignations")).WillReturnResult(sqlmock.NewResult(1, 1))

	res := &models.Resignation{EmployeeID: "emp-1", ExpectedLastDay: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Reason: "relocation", State: models.ResignationDraft}
	require.NoError(t, repo.Create(context.Background(), res))
	require.Equal(t, "RES/00007", res.Reference)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResignationRepositoryUpdateMapsUniqueViolation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResignationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE resignations SET")).WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Update(context.Background(), &models.Resignation{ID: "res-1", State: models.ResignationConfirm})
	require.ErrorIs(t, err, ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResignationRepositoryCountActive(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResignationRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("state IN ('confirm', 'approved') AND id::text <> $2")).
		WithArgs("emp-1", "res-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountActive(context.Background(), "emp-1", "res-1")
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExitInterviewRepositoryListByResignation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewExitInterviewRepository(db)
	rows := sqlmock.NewRows([]string{"id", "reference", "employee_id", "resignation_id", "state"}).
		AddRow("ei-1", "EXIT/00001", "emp-1", "res-1", "done")
	mock.ExpectQuery(regexp.QuoteMeta("FROM exit_interviews WHERE resignation_id = $1 ORDER BY interview_date DESC LIMIT 50 OFFSET 0")).
		WithArgs("res-1").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), models.ExitInterviewFilter{ResignationID: "res-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, models.ExitInterviewDone, list[0].State)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepositoryCreateTypeDuplicateCode(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDocumentRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO document_types")).WillReturnError(&pq.Error{Code: "23505"})

	code := "KTP"
	err := repo.CreateType(context.Background(), &models.DocumentType{Name: "National ID", Code: &code})
	require.ErrorIs(t, err, ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepositoryListActiveOnly(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDocumentRepository(db)
	rows := sqlmock.NewRows([]string{"id", "name", "employee_id", "file_name", "active"}).
		AddRow("doc-1", "Passport", "emp-1", "passport.pdf", true)
	mock.ExpectQuery(regexp.QuoteMeta("FROM employee_documents WHERE employee_id = $1 AND active = $2 ORDER BY expiry_date ASC NULLS LAST")).
		WithArgs("emp-1", true).
		WillReturnRows(rows)

	docs, err := repo.List(context.Background(), models.DocumentFilter{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewEmployeeRepository(db)
	rows := sqlmock.NewRows([]string{"id", "full_name", "department_id", "department_name", "active"}).
		AddRow("emp-1", "Siti Rahma", "dep-1", "Finance", true)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN departments d ON d.id = e.department_id WHERE e.id = $1")).
		WithArgs("emp-1").
		WillReturnRows(rows)

	emp, err := repo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Equal(t, "Finance", *emp.DepartmentName)
	require.NoError(t, mock.ExpectationsWereMet())
}
