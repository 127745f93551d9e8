package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/notify"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type caseReader interface {
	GetByID(ctx context.Context, id string) (*models.DisciplinaryCase, error)
}

type offenseReader interface {
	GetByID(ctx context.Context, id string) (*models.OffenseClassification, error)
}

type employeeDirectory interface {
	GetByID(ctx context.Context, id string) (*models.Employee, error)
}

type changeWriter interface {
	Apply(ctx context.Context, cs repository.ChangeSet) error
}

type notifier interface {
	Notify(n notify.Notification) error
}

// WorkflowDeps are the collaborators shared by the case, action, appeal and
// investigation services.
type WorkflowDeps struct {
	Cases     caseReader
	Offenses  offenseReader
	Employees employeeDirectory
	Store     changeWriter
	Metrics   *MetricsService
	Notifier  notifier
	Validator *validator.Validate
	Logger    *zap.Logger
	// Clock returns the current instant; dates are taken from it in UTC.
	Clock func() time.Time
}

func (d WorkflowDeps) withDefaults() WorkflowDeps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Validator == nil {
		d.Validator = validator.New()
	}
	if d.Clock == nil {
		d.Clock = func() time.Time { return time.Now().UTC() }
	}
	return d
}

func (d WorkflowDeps) today() time.Time {
	return discipline.Date(d.Clock())
}

func (d WorkflowDeps) loadCase(ctx context.Context, id string) (*models.DisciplinaryCase, error) {
	c, err := d.Cases.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "case")
	}
	return c, nil
}

func (d WorkflowDeps) firstContract(ctx context.Context, employeeID string) *time.Time {
	if d.Employees == nil {
		return nil
	}
	emp, err := d.Employees.GetByID(ctx, employeeID)
	if err != nil {
		d.Logger.Warn("employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil
	}
	return emp.FirstContractDate
}

// commit persists cs with the events describing transitions, then publishes
// the transitions.
func (d WorkflowDeps) commit(ctx context.Context, c *models.DisciplinaryCase, actor *models.JWTClaims, cs repository.ChangeSet, transitions ...discipline.Transition) error {
	events, err := buildEvents(c.ID, actor.ActorID(), d.Clock(), transitions...)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode case events")
	}
	cs.Events = append(cs.Events, events...)
	if err := d.Store.Apply(ctx, cs); err != nil {
		d.Logger.Error("workflow commit failed", zap.String("case_id", c.ID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save changes")
	}
	d.publish(c, actor, transitions...)
	return nil
}

func (d WorkflowDeps) publish(c *models.DisciplinaryCase, actor *models.JWTClaims, transitions ...discipline.Transition) {
	for _, t := range transitions {
		d.Metrics.RecordTransition(string(t.Entity), t.Name)
		d.Logger.Info("workflow transition",
			zap.String("case_id", c.ID),
			zap.String("entity", string(t.Entity)),
			zap.String("entity_id", t.EntityID),
			zap.String("transition", t.Name),
			zap.String("from", t.From),
			zap.String("to", t.To),
			zap.String("actor_id", actor.ActorID()),
		)
		if d.Notifier == nil {
			continue
		}
		err := d.Notifier.Notify(notify.Notification{
			CaseID:     c.ID,
			Kind:       string(t.Entity) + "." + t.Name,
			Recipients: caseRecipients(c),
			Subject:    fmt.Sprintf("%s: %s %s", c.Reference, t.Entity, t.Name),
		})
		if err != nil {
			d.Metrics.RecordNotification("dropped")
			d.Logger.Warn("notification not queued", zap.String("case_id", c.ID), zap.Error(err))
			continue
		}
		d.Metrics.RecordNotification("queued")
	}
}

// reject counts domain rejections and passes err through.
func (d WorkflowDeps) reject(err error) error {
	if appErr := appErrors.FromError(err); appErr != nil {
		d.Metrics.RecordRejection(appErr.Code)
	}
	return err
}

func buildEvents(caseID, actorID string, at time.Time, transitions ...discipline.Transition) ([]models.CaseEvent, error) {
	events := make([]models.CaseEvent, 0, len(transitions))
	for _, t := range transitions {
		details := []byte("{}")
		if len(t.Details) > 0 {
			raw, err := json.Marshal(t.Details)
			if err != nil {
				return nil, err
			}
			details = raw
		}
		events = append(events, models.CaseEvent{
			ID:         uuid.NewString(),
			CaseID:     caseID,
			Entity:     t.Entity,
			EntityID:   t.EntityID,
			Transition: t.Name,
			ActorID:    actorID,
			FromState:  optional(t.From),
			ToState:    optional(t.To),
			Details:    details,
			OccurredAt: at.UTC(),
		})
	}
	return events, nil
}

func caseRecipients(c *models.DisciplinaryCase) []string {
	recipients := []string{c.EmployeeID}
	if c.ManagerID != nil && *c.ManagerID != "" {
		recipients = append(recipients, *c.ManagerID)
	}
	return recipients
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// lookupError maps sql.ErrNoRows to NOT_FOUND and anything else to INTERNAL_ERROR.
func lookupError(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, what+" not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+what)
}

func validationError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func pageSize(size int) int {
	switch {
	case size <= 0:
		return 20
	case size > 200:
		return 200
	}
	return size
}
