package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

func claims(role models.UserRole, employeeID string) *models.JWTClaims {
	return &models.JWTClaims{UserID: "user-" + string(role), Role: role, EmployeeID: employeeID}
}

func isForbidden(err error) bool {
	return err != nil && appErrors.FromError(err).Code == appErrors.ErrForbidden.Code
}

func TestManageOffenses(t *testing.T) {
	assert.NoError(t, ManageOffenses(claims(models.RoleHRManager, "")))
	assert.True(t, isForbidden(ManageOffenses(claims(models.RoleHROfficer, ""))))
	err := ManageOffenses(nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestApproveActionLevels(t *testing.T) {
	cases := []struct {
		role  models.UserRole
		level models.ApprovalLevel
		ok    bool
	}{
		{models.RoleHROfficer, models.ApprovalHR, true},
		{models.RoleHROfficer, models.ApprovalManager, false},
		{models.RoleHRManager, models.ApprovalManager, true},
		{models.RoleHRManager, models.ApprovalExecutive, false},
		{models.RoleExecutive, models.ApprovalExecutive, true},
		{models.RoleExecutive, models.ApprovalHR, true},
		{models.RoleEmployee, models.ApprovalHR, false},
		{models.RoleAdmin, models.ApprovalExecutive, true},
	}
	for _, tc := range cases {
		err := ApproveAction(claims(tc.role, ""), tc.level)
		if tc.ok {
			assert.NoError(t, err, "%s/%s", tc.role, tc.level)
		} else {
			assert.True(t, isForbidden(err), "%s/%s", tc.role, tc.level)
		}
	}
}

func TestViewCase(t *testing.T) {
	mgr := "emp-mgr"
	c := &models.DisciplinaryCase{EmployeeID: "emp-1", ManagerID: &mgr}

	assert.NoError(t, ViewCase(claims(models.RoleHROfficer, ""), c))
	assert.NoError(t, ViewCase(claims(models.RoleExecutive, ""), c))
	assert.NoError(t, ViewCase(claims(models.RoleEmployee, "emp-1"), c))
	assert.NoError(t, ViewCase(claims(models.RoleEmployee, "emp-mgr"), c))
	assert.True(t, isForbidden(ViewCase(claims(models.RoleEmployee, "emp-2"), c)))
	assert.True(t, isForbidden(ViewCase(claims(models.RoleEmployee, ""), c)))
}

func TestScopeCaseFilter(t *testing.T) {
	f := models.CaseFilter{EmployeeID: "emp-9"}
	require.NoError(t, ScopeCaseFilter(claims(models.RoleHRManager, ""), &f))
	assert.Equal(t, "emp-9", f.EmployeeID)

	require.NoError(t, ScopeCaseFilter(claims(models.RoleEmployee, "emp-1"), &f))
	assert.Equal(t, "emp-1", f.EmployeeID)

	assert.True(t, isForbidden(ScopeCaseFilter(claims(models.RoleEmployee, ""), &f)))
}

func TestRespondToCase(t *testing.T) {
	c := &models.DisciplinaryCase{EmployeeID: "emp-1"}
	assert.NoError(t, RespondToCase(claims(models.RoleEmployee, "emp-1"), c))
	assert.True(t, isForbidden(RespondToCase(claims(models.RoleHRManager, "emp-2"), c)))
}

func TestScopeEmployee(t *testing.T) {
	id, err := ScopeEmployee(claims(models.RoleHROfficer, "emp-7"))
	require.NoError(t, err)
	assert.Empty(t, id)

	id, err = ScopeEmployee(claims(models.RoleHROfficer, "emp-7"), models.RoleHRManager)
	require.NoError(t, err)
	assert.Equal(t, "emp-7", id)

	_, err = ScopeEmployee(claims(models.RoleEmployee, ""))
	assert.True(t, isForbidden(err))
}

func TestConfirmResignation(t *testing.T) {
	r := &models.Resignation{EmployeeID: "emp-1"}
	assert.NoError(t, ConfirmResignation(claims(models.RoleEmployee, "emp-1"), r))
	assert.NoError(t, ConfirmResignation(claims(models.RoleHRManager, ""), r))
	assert.True(t, isForbidden(ConfirmResignation(claims(models.RoleHROfficer, "emp-3"), r)))
}
