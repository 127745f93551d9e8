// Package authz holds the role checks services run before any mutation.
package authz

import (
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

var (
	hrStaff    = []models.UserRole{models.RoleAdmin, models.RoleHRManager, models.RoleHROfficer}
	hrManagers = []models.UserRole{models.RoleAdmin, models.RoleHRManager}
	reviewers  = []models.UserRole{models.RoleAdmin, models.RoleHRManager, models.RoleExecutive}
	readers    = []models.UserRole{models.RoleAdmin, models.RoleHRManager, models.RoleHROfficer, models.RoleExecutive}
)

func forbidden(msg string) error {
	return appErrors.Clone(appErrors.ErrForbidden, msg)
}

func authenticated(actor *models.JWTClaims) error {
	if actor == nil || actor.UserID == "" {
		return appErrors.Clone(appErrors.ErrUnauthorized, "authentication required")
	}
	return nil
}

func requireRole(actor *models.JWTClaims, msg string, roles ...models.UserRole) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if !actor.HasRole(roles...) {
		return forbidden(msg)
	}
	return nil
}

// IsHRStaff reports whether actor works in HR.
func IsHRStaff(actor *models.JWTClaims) bool {
	return actor.HasRole(hrStaff...)
}

// ManageOffenses gates offense classification writes to HR managers.
func ManageOffenses(actor *models.JWTClaims) error {
	return requireRole(actor, "only HR managers can create or update offense classifications", hrManagers...)
}

// ManageCase gates HR-side case transitions and child record creation.
func ManageCase(actor *models.JWTClaims) error {
	return requireRole(actor, "only HR staff can change disciplinary cases", hrStaff...)
}

// DeleteCase gates removal of a case and everything under it.
func DeleteCase(actor *models.JWTClaims) error {
	return requireRole(actor, "only HR managers can delete disciplinary cases", hrManagers...)
}

// ViewCase allows HR, executives, the employee and their direct manager.
func ViewCase(actor *models.JWTClaims, c *models.DisciplinaryCase) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if actor.HasRole(readers...) {
		return nil
	}
	if isEmployee(actor, c.EmployeeID) || (c.ManagerID != nil && isEmployee(actor, *c.ManagerID)) {
		return nil
	}
	return forbidden("you cannot view this case")
}

// ScopeCaseFilter restricts listings for callers outside HR to their own cases.
func ScopeCaseFilter(actor *models.JWTClaims, filter *models.CaseFilter) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if actor.HasRole(readers...) {
		return nil
	}
	if actor.EmployeeID == "" {
		return forbidden("no employee record is linked to this account")
	}
	filter.EmployeeID = actor.EmployeeID
	return nil
}

// RespondToCase gates acknowledge and contest to the employee concerned.
func RespondToCase(actor *models.JWTClaims, c *models.DisciplinaryCase) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if isEmployee(actor, c.EmployeeID) || actor.HasRole(models.RoleAdmin) {
		return nil
	}
	return forbidden("only the employee concerned can respond to this case")
}

// ApproveAction checks the actor against the offense approval level.
func ApproveAction(actor *models.JWTClaims, level models.ApprovalLevel) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	var allowed []models.UserRole
	switch level {
	case models.ApprovalExecutive:
		allowed = []models.UserRole{models.RoleAdmin, models.RoleExecutive}
	case models.ApprovalManager:
		allowed = reviewers
	default:
		allowed = readers
	}
	if !actor.HasRole(allowed...) {
		return forbidden("approval requires " + string(level) + " level authority")
	}
	return nil
}

// FileAppeal lets the employee or HR on their behalf lodge an appeal.
func FileAppeal(actor *models.JWTClaims, c *models.DisciplinaryCase) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if isEmployee(actor, c.EmployeeID) || IsHRStaff(actor) {
		return nil
	}
	return forbidden("only the employee concerned or HR can file an appeal")
}

// ReviewAppeal gates appeal review, hearing, decision and closure.
func ReviewAppeal(actor *models.JWTClaims) error {
	return requireRole(actor, "only HR managers or executives can process appeals", reviewers...)
}

// ManageDocuments gates document type and document writes.
func ManageDocuments(actor *models.JWTClaims) error {
	return requireRole(actor, "only HR staff can manage employee documents", hrStaff...)
}

// ViewDocument allows HR staff or the document owner.
func ViewDocument(actor *models.JWTClaims, employeeID string) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if IsHRStaff(actor) || isEmployee(actor, employeeID) {
		return nil
	}
	return forbidden("you cannot view this document")
}

// ScopeEmployee returns the employee id a listing must be limited to, or ""
// when the actor may see everyone.
func ScopeEmployee(actor *models.JWTClaims, managers ...models.UserRole) (string, error) {
	if err := authenticated(actor); err != nil {
		return "", err
	}
	if len(managers) == 0 {
		managers = hrStaff
	}
	if actor.HasRole(managers...) {
		return "", nil
	}
	if actor.EmployeeID == "" {
		return "", forbidden("no employee record is linked to this account")
	}
	return actor.EmployeeID, nil
}

// IsResignationManager reports whether actor processes resignations for others.
func IsResignationManager(actor *models.JWTClaims) bool {
	return actor.HasRole(hrManagers...)
}

// ManageResignations gates approval, cancellation and reset.
func ManageResignations(actor *models.JWTClaims) error {
	return requireRole(actor, "only HR managers can process resignations", hrManagers...)
}

// ConfirmResignation allows the resigning employee or an HR manager.
func ConfirmResignation(actor *models.JWTClaims, r *models.Resignation) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if IsResignationManager(actor) || isEmployee(actor, r.EmployeeID) {
		return nil
	}
	return forbidden("you cannot confirm this resignation")
}

// ManageExitInterviews gates exit interview writes to HR staff.
func ManageExitInterviews(actor *models.JWTClaims) error {
	return requireRole(actor, "only HR staff can manage exit interviews", hrStaff...)
}

func isEmployee(actor *models.JWTClaims, employeeID string) bool {
	return actor.EmployeeID != "" && actor.EmployeeID == employeeID
}
