package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

const genericEventMessage = "event.generic"

type eventReader interface {
	ListByCase(ctx context.Context, caseID string) ([]models.CaseEvent, error)
}

type translator interface {
	Localize(ctx context.Context, messageID string, data map[string]any) (string, error)
}

// AuditService reads the case history and renders each entry as text in the
// caller's locale.
type AuditService struct {
	cases   caseReader
	events  eventReader
	catalog translator
	logger  *zap.Logger
}

// NewAuditService constructs the service.
func NewAuditService(cases caseReader, events eventReader, catalog translator, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{cases: cases, events: events, catalog: catalog, logger: logger}
}

// History returns the events of a case in the order they happened.
func (s *AuditService) History(ctx context.Context, actor *models.JWTClaims, caseID string) ([]models.CaseEvent, error) {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, lookupError(err, "case")
	}
	if err := authz.ViewCase(actor, c); err != nil {
		return nil, err
	}
	events, err := s.events.ListByCase(ctx, caseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load case history")
	}
	for i := range events {
		events[i].Text = s.render(ctx, c, &events[i])
	}
	return events, nil
}

func (s *AuditService) render(ctx context.Context, c *models.DisciplinaryCase, e *models.CaseEvent) string {
	data := map[string]any{}
	if len(e.Details) > 0 {
		if err := json.Unmarshal(e.Details, &data); err != nil {
			s.logger.Warn("undecodable event details", zap.String("event_id", e.ID), zap.Error(err))
			data = map[string]any{}
		}
	}
	data["Actor"] = e.ActorID
	data["Reference"] = c.Reference
	data["Entity"] = string(e.Entity)
	data["From"] = deref(e.FromState)
	data["To"] = deref(e.ToState)
	if _, ok := data["Outcome"]; !ok && e.Transition == "decision_recorded" && c.DecisionOutcome != nil {
		data["Outcome"] = string(*c.DecisionOutcome)
	}

	if s.catalog == nil {
		return e.Transition
	}
	text, err := s.catalog.Localize(ctx, "event."+string(e.Entity)+"."+e.Transition, data)
	if err == nil {
		return text
	}
	text, err = s.catalog.Localize(ctx, genericEventMessage, data)
	if err != nil {
		return e.Transition + " " + e.OccurredAt.Format(time.RFC3339)
	}
	return text
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
