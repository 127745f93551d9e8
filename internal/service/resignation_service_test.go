package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type memResignations struct {
	items  map[string]*models.Resignation
	active int
	seq    int
}

func newMemResignations(items ...models.Resignation) *memResignations {
	m := &memResignations{items: map[string]*models.Resignation{}}
	for i := range items {
		r := items[i]
		m.items[r.ID] = &r
	}
	return m
}

func (m *memResignations) List(_ context.Context, filter models.ResignationFilter) ([]models.Resignation, error) {
	var out []models.Resignation
	for _, r := range m.items {
		if filter.EmployeeID != "" && r.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *memResignations) GetByID(_ context.Context, id string) (*models.Resignation, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *r
	return &copy, nil
}

func (m *memResignations) CountActive(context.Context, string, string) (int, error) {
	return m.active, nil
}

func (m *memResignations) Create(_ context.Context, res *models.Resignation) error {
	m.seq++
	res.ID = "res-new"
	res.Reference = "RES/2026/00001"
	copy := *res
	m.items[res.ID] = &copy
	return nil
}

func (m *memResignations) Update(_ context.Context, res *models.Resignation) error {
	if _, ok := m.items[res.ID]; !ok {
		return sql.ErrNoRows
	}
	copy := *res
	m.items[res.ID] = &copy
	return nil
}

type memExitInterviews struct {
	items map[string]*models.ExitInterview
}

func newMemExitInterviews(items ...models.ExitInterview) *memExitInterviews {
	m := &memExitInterviews{items: map[string]*models.ExitInterview{}}
	for i := range items {
		ei := items[i]
		m.items[ei.ID] = &ei
	}
	return m
}

func (m *memExitInterviews) List(_ context.Context, filter models.ExitInterviewFilter) ([]models.ExitInterview, error) {
	var out []models.ExitInterview
	for _, ei := range m.items {
		if filter.ResignationID != "" && (ei.ResignationID == nil || *ei.ResignationID != filter.ResignationID) {
			continue
		}
		out = append(out, *ei)
	}
	return out, nil
}

func (m *memExitInterviews) GetByID(_ context.Context, id string) (*models.ExitInterview, error) {
	ei, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *ei
	return &copy, nil
}

func (m *memExitInterviews) Create(_ context.Context, ei *models.ExitInterview) error {
	ei.ID = "ei-new"
	ei.Reference = "EXIT/2026/00001"
	copy := *ei
	m.items[ei.ID] = &copy
	return nil
}

func (m *memExitInterviews) Update(_ context.Context, ei *models.ExitInterview) error {
	copy := *ei
	m.items[ei.ID] = &copy
	return nil
}

func leaverDirectory() *memEmployees {
	contract := day("2019-03-01")
	return newMemEmployees(
		models.Employee{ID: "emp-1", FullName: "Ana Pereira", DepartmentID: strPtr("dep-ops"), FirstContractDate: &contract, Active: true},
		models.Employee{ID: "emp-2", FullName: "Rui Lopes", Active: true},
	)
}

func draftResignation() models.Resignation {
	contract := day("2019-03-01")
	return models.Resignation{
		ID:                "res-1",
		Reference:         "RES/2026/00001",
		EmployeeID:        "emp-1",
		ContractStartDate: &contract,
		ExpectedLastDay:   day("2026-04-30"),
		Reason:            "relocating",
		State:             models.ResignationDraft,
	}
}

func newResignationService(repo *memResignations, interviews *memExitInterviews, employees *memEmployees) *ResignationService {
	svc := NewResignationService(repo, interviews, employees, validator.New(), zap.NewNop())
	svc.clock = fixedClock("2026-03-05")
	return svc
}

func TestResignationServiceCreateFilesForSelf(t *testing.T) {
	repo := newMemResignations()
	svc := newResignationService(repo, newMemExitInterviews(), leaverDirectory())
	lastDay := dto.NewDate(day("2026-04-30"))

	res, err := svc.Create(context.Background(), employee1, dto.CreateResignationRequest{
		EmployeeID:      "emp-2",
		ExpectedLastDay: &lastDay,
		Reason:          "relocating",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", res.EmployeeID)
	assert.Equal(t, models.ResignationDraft, res.State)
	require.NotNil(t, res.ContractStartDate)
	assert.Equal(t, day("2019-03-01"), *res.ContractStartDate)
	assert.Equal(t, "dep-ops", *res.DepartmentID)
}

func TestResignationServiceConfirm(t *testing.T) {
	repo := newMemResignations(draftResignation())
	svc := newResignationService(repo, newMemExitInterviews(), leaverDirectory())

	_, err := svc.Confirm(context.Background(), employee2, "res-1")
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	res, err := svc.Confirm(context.Background(), employee1, "res-1")
	require.NoError(t, err)
	assert.Equal(t, models.ResignationConfirm, res.State)
	assert.Equal(t, day("2026-03-05"), *res.ConfirmDate)
	assert.Equal(t, models.ResignationConfirm, repo.items["res-1"].State)

	_, err = svc.Confirm(context.Background(), employee1, "res-1")
	assert.True(t, appErrors.IsUserError(err))
}

func TestResignationServiceConfirmRejectsSecondActive(t *testing.T) {
	repo := newMemResignations(draftResignation())
	repo.active = 1
	svc := newResignationService(repo, newMemExitInterviews(), leaverDirectory())

	_, err := svc.Confirm(context.Background(), employee1, "res-1")
	assert.True(t, appErrors.IsUserError(err))
	assert.Equal(t, models.ResignationDraft, repo.items["res-1"].State)
}

func TestResignationServiceConfirmChecksContractDates(t *testing.T) {
	r := draftResignation()
	r.ContractStartDate = timePtr(day("2026-05-01"))
	repo := newMemResignations(r)
	svc := newResignationService(repo, newMemExitInterviews(), leaverDirectory())

	_, err := svc.Confirm(context.Background(), hrManager, "res-1")
	assert.True(t, appErrors.IsUserError(err))
}

func TestResignationServiceApproveRequiresDoneInterview(t *testing.T) {
	r := draftResignation()
	r.State = models.ResignationConfirm
	repo := newMemResignations(r)
	interviews := newMemExitInterviews(models.ExitInterview{ID: "ei-1", Reference: "EXIT/2026/00001", EmployeeID: "emp-1", ResignationID: strPtr("res-1"), State: models.ExitInterviewConfirmed})
	employees := leaverDirectory()
	svc := newResignationService(repo, interviews, employees)
	req := dto.ApproveResignationRequest{ResignationType: models.ResignationResigned}

	_, err := svc.Approve(context.Background(), hrOfficer, "res-1", req)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = svc.Approve(context.Background(), hrManager, "res-1", req)
	require.Error(t, err)
	assert.True(t, appErrors.IsUserError(err))
	assert.Contains(t, err.Error(), "EXIT/2026/00001")

	interviews.items["ei-1"].State = models.ExitInterviewDone
	res, err := svc.Approve(context.Background(), hrManager, "res-1", req)
	require.NoError(t, err)
	assert.Equal(t, models.ResignationApproved, res.State)
	assert.Equal(t, day("2026-04-30"), *res.ApprovedLastDay)
	assert.Equal(t, models.ResignationResigned, *res.ResignationType)
	assert.False(t, employees.employees["emp-1"].Active)
}

func TestResignationServiceApproveReportsDeactivationFailure(t *testing.T) {
	r := draftResignation()
	r.State = models.ResignationConfirm
	employees := leaverDirectory()
	employees.setErr = errors.New("db down")
	svc := newResignationService(newMemResignations(r), newMemExitInterviews(), employees)

	_, err := svc.Approve(context.Background(), hrManager, "res-1", dto.ApproveResignationRequest{ResignationType: models.ResignationFired})
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}

func TestResignationServiceCancelAndReset(t *testing.T) {
	repo := newMemResignations(draftResignation())
	svc := newResignationService(repo, newMemExitInterviews(), leaverDirectory())

	_, err := svc.ResetToDraft(context.Background(), hrManager, "res-1")
	assert.True(t, appErrors.IsUserError(err))

	res, err := svc.Cancel(context.Background(), hrManager, "res-1")
	require.NoError(t, err)
	assert.Equal(t, models.ResignationCancel, res.State)

	res, err = svc.ResetToDraft(context.Background(), hrManager, "res-1")
	require.NoError(t, err)
	assert.Equal(t, models.ResignationDraft, res.State)
	assert.Nil(t, res.ConfirmDate)
}

func TestResignationServiceListScopesEmployees(t *testing.T) {
	other := draftResignation()
	other.ID = "res-2"
	other.EmployeeID = "emp-2"
	svc := newResignationService(newMemResignations(draftResignation(), other), newMemExitInterviews(), leaverDirectory())

	items, err := svc.List(context.Background(), employee2, models.ResignationFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "res-2", items[0].ID)

	_, err = svc.Get(context.Background(), employee2, "res-1")
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func newExitInterviewService(repo *memExitInterviews, resignations *memResignations) *ExitInterviewService {
	svc := NewExitInterviewService(repo, resignations, leaverDirectory(), validator.New(), zap.NewNop())
	svc.clock = fixedClock("2026-03-05")
	return svc
}

func TestExitInterviewServiceCreate(t *testing.T) {
	repo := newMemExitInterviews()
	svc := newExitInterviewService(repo, newMemResignations(draftResignation()))
	rating := 4

	ei, err := svc.Create(context.Background(), hrOfficer, dto.CreateExitInterviewRequest{
		EmployeeID:       "emp-1",
		ResignationID:    strPtr("res-1"),
		ManagementRating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExitInterviewDraft, ei.State)
	assert.Equal(t, day("2026-03-05"), ei.InterviewDate)
	require.NotNil(t, ei.InterviewerID)
	assert.Equal(t, "emp-hr", *ei.InterviewerID)
}

func TestExitInterviewServiceRejectsForeignResignation(t *testing.T) {
	svc := newExitInterviewService(newMemExitInterviews(), newMemResignations(draftResignation()))

	_, err := svc.Create(context.Background(), hrOfficer, dto.CreateExitInterviewRequest{EmployeeID: "emp-2", ResignationID: strPtr("res-1")})
	assert.True(t, appErrors.IsValidation(err))

	rating := 9
	_, err = svc.Create(context.Background(), hrOfficer, dto.CreateExitInterviewRequest{EmployeeID: "emp-1", GrowthRating: &rating})
	assert.True(t, appErrors.IsValidation(err))

	_, err = svc.Create(context.Background(), employee1, dto.CreateExitInterviewRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestExitInterviewServiceLifecycle(t *testing.T) {
	repo := newMemExitInterviews(models.ExitInterview{ID: "ei-1", EmployeeID: "emp-1", State: models.ExitInterviewDraft})
	svc := newExitInterviewService(repo, newMemResignations())
	ctx := context.Background()

	_, err := svc.Done(ctx, hrOfficer, "ei-1")
	assert.True(t, appErrors.IsUserError(err))

	ei, err := svc.Confirm(ctx, hrOfficer, "ei-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExitInterviewConfirmed, ei.State)

	ei, err = svc.Done(ctx, hrOfficer, "ei-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExitInterviewDone, ei.State)

	ei, err = svc.ResetToDraft(ctx, hrOfficer, "ei-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExitInterviewDraft, ei.State)

	_, err = svc.Confirm(ctx, hrOfficer, "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
