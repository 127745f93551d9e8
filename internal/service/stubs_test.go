package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/notify"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(s string) func() time.Time {
	t := day(s).Add(9 * time.Hour)
	return func() time.Time { return t }
}

func actorWithRole(role models.UserRole, employeeID string) *models.JWTClaims {
	return &models.JWTClaims{UserID: "user-" + string(role), EmployeeID: employeeID, Role: role, FullName: "Test " + string(role)}
}

var (
	hrOfficer = actorWithRole(models.RoleHROfficer, "emp-hr")
	hrManager = actorWithRole(models.RoleHRManager, "emp-hrm")
	executive = actorWithRole(models.RoleExecutive, "emp-exec")
	employee1 = actorWithRole(models.RoleEmployee, "emp-1")
	employee2 = actorWithRole(models.RoleEmployee, "emp-2")
)

type memCases struct {
	cases       map[string]*models.DisciplinaryCase
	prior       models.WarningCounts
	listFilters []models.CaseFilter
	deleted     []string
}

func newMemCases(cases ...models.DisciplinaryCase) *memCases {
	m := &memCases{cases: map[string]*models.DisciplinaryCase{}}
	for i := range cases {
		c := cases[i]
		m.cases[c.ID] = &c
	}
	return m
}

func (m *memCases) GetByID(_ context.Context, id string) (*models.DisciplinaryCase, error) {
	c, ok := m.cases[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *c
	return &copy, nil
}

func (m *memCases) List(_ context.Context, filter models.CaseFilter) ([]models.DisciplinaryCase, int, error) {
	m.listFilters = append(m.listFilters, filter)
	var out []models.DisciplinaryCase
	for _, c := range m.cases {
		if filter.EmployeeID != "" && c.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, *c)
	}
	total := len(out)
	start := (filter.Page - 1) * filter.PageSize
	if start > len(out) {
		start = len(out)
	}
	end := start + filter.PageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (m *memCases) Delete(_ context.Context, id string) error {
	if _, ok := m.cases[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.cases, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memCases) CountPriorWarnings(_ context.Context, _, _ string) (models.WarningCounts, error) {
	return m.prior, nil
}

type memOffenses map[string]*models.OffenseClassification

func (m memOffenses) GetByID(_ context.Context, id string) (*models.OffenseClassification, error) {
	o, ok := m[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *o
	return &copy, nil
}

type memEmployees struct {
	employees map[string]*models.Employee
	setActive map[string]bool
	setErr    error
}

func newMemEmployees(employees ...models.Employee) *memEmployees {
	m := &memEmployees{employees: map[string]*models.Employee{}, setActive: map[string]bool{}}
	for i := range employees {
		e := employees[i]
		m.employees[e.ID] = &e
	}
	return m
}

func (m *memEmployees) GetByID(_ context.Context, id string) (*models.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *e
	return &copy, nil
}

func (m *memEmployees) SetActive(_ context.Context, id string, active bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setActive[id] = active
	if e, ok := m.employees[id]; ok {
		e.Active = active
	}
	return nil
}

// recordingStore keeps every applied change set and mirrors case writes into
// the case map so follow-up reads see them.
type recordingStore struct {
	cases          *memCases
	actions        memActions
	appeals        memAppeals
	investigations memInvestigations
	applied        []repository.ChangeSet
	err            error
}

func (s *recordingStore) Apply(_ context.Context, cs repository.ChangeSet) error {
	if s.err != nil {
		return s.err
	}
	s.applied = append(s.applied, cs)
	if s.cases != nil {
		for _, c := range []*models.DisciplinaryCase{cs.CreateCase, cs.UpdateCase} {
			if c != nil {
				copy := *c
				s.cases.cases[c.ID] = &copy
			}
		}
	}
	if s.actions != nil {
		for _, a := range []*models.DisciplinaryAction{cs.CreateAction, cs.UpdateAction} {
			if a != nil {
				copy := *a
				s.actions[a.ID] = &copy
			}
		}
	}
	if s.appeals != nil {
		for _, ap := range []*models.Appeal{cs.CreateAppeal, cs.UpdateAppeal} {
			if ap != nil {
				copy := *ap
				s.appeals[ap.ID] = &copy
			}
		}
	}
	if s.investigations != nil {
		for _, inv := range []*models.Investigation{cs.CreateInvestigation, cs.UpdateInvestigation} {
			if inv != nil {
				copy := *inv
				s.investigations[inv.ID] = &copy
			}
		}
	}
	return nil
}

func (s *recordingStore) last() repository.ChangeSet {
	if len(s.applied) == 0 {
		return repository.ChangeSet{}
	}
	return s.applied[len(s.applied)-1]
}

func (s *recordingStore) events() []models.CaseEvent {
	var out []models.CaseEvent
	for _, cs := range s.applied {
		out = append(out, cs.Events...)
	}
	return out
}

type recordingNotifier struct {
	sent []notify.Notification
	err  error
}

func (n *recordingNotifier) Notify(msg notify.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

var errStoreDown = errors.New("store unavailable")

type workflowFixture struct {
	cases     *memCases
	offenses  memOffenses
	employees *memEmployees
	store     *recordingStore
	notifier  *recordingNotifier
	deps      WorkflowDeps
}

func newWorkflowFixture(today string, cases ...models.DisciplinaryCase) *workflowFixture {
	f := &workflowFixture{
		cases: newMemCases(cases...),
		offenses: memOffenses{
			"off-minor": {ID: "off-minor", Name: "Lateness", Severity: models.SeverityMinor, ApprovalLevel: models.ApprovalHR, Active: true},
			"off-gross": {ID: "off-gross", Name: "Theft", Severity: models.SeverityGross, ApprovalLevel: models.ApprovalExecutive, ImmediateDismissal: true, Active: true},
			"off-old":   {ID: "off-old", Name: "Retired rule", Severity: models.SeverityMinor, ApprovalLevel: models.ApprovalHR, Active: false},
		},
		employees: newMemEmployees(
			models.Employee{ID: "emp-1", FullName: "Ana Pereira", DepartmentID: strPtr("dep-ops"), Position: strPtr("Operator"), ManagerID: strPtr("emp-mgr"), FirstContractDate: timePtr(day("2019-03-01")), Active: true},
			models.Employee{ID: "emp-2", FullName: "Rui Costa", Active: true},
		),
		notifier: &recordingNotifier{},
	}
	f.store = &recordingStore{cases: f.cases}
	f.deps = WorkflowDeps{
		Cases:     f.cases,
		Offenses:  f.offenses,
		Employees: f.employees,
		Store:     f.store,
		Metrics:   NewMetricsService(),
		Notifier:  f.notifier,
		Validator: validator.New(),
		Logger:    zap.NewNop(),
		Clock:     fixedClock(today),
	}
	return f
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func notifiedCase() models.DisciplinaryCase {
	return models.DisciplinaryCase{
		ID:                      "case-1",
		Reference:               "DC/2026/00001",
		EmployeeID:              "emp-1",
		ManagerID:               strPtr("emp-mgr"),
		IncidentDate:            day("2026-03-02"),
		ReportedDate:            day("2026-03-03"),
		Description:             "left the line unattended",
		OffenseClassificationID: "off-minor",
		Severity:                models.SeverityMinor,
		State:                   models.CaseStateNotified,
		AcknowledgmentState:     models.AckPending,
	}
}

func decisionCase(outcome models.DecisionOutcome, served bool) models.DisciplinaryCase {
	c := notifiedCase()
	c.State = models.CaseStateDecision
	c.DecisionOutcome = &outcome
	c.DecisionRationale = strPtr("repeated lateness")
	c.DecisionDate = timePtr(day("2026-03-10"))
	c.DecisionServed = served
	if served {
		c.DecisionServedDate = timePtr(day("2026-03-11"))
	}
	return c
}

func transitionFor(entity models.EventEntity, name, from, to string, details map[string]any) discipline.Transition {
	return discipline.Transition{Entity: entity, EntityID: "case-1", Name: name, From: from, To: to, Details: details}
}
