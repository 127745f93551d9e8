package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

var eventColumns = []string{
	"id", "case_id", "entity", "entity_id", "transition", "actor_id", "from_state", "to_state",
	"details", "occurred_at",
}

// EventRepository persists the append-only case history.
type EventRepository struct {
	db queryer
}

// NewEventRepository constructs the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Append inserts events in order.
func (r *EventRepository) Append(ctx context.Context, events []models.CaseEvent) error {
	query := insertQuery("case_events", eventColumns)
	for i := range events {
		ev := &events[i]
		if ev.ID == "" {
			ev.ID = uuid.NewString()
		}
		if ev.OccurredAt.IsZero() {
			ev.OccurredAt = time.Now().UTC()
		}
		if len(ev.Details) == 0 {
			ev.Details = []byte("{}")
		}
		if _, err := r.db.NamedExecContext(ctx, query, ev); err != nil {
			return fmt.Errorf("append case event: %w", err)
		}
	}
	return nil
}

// ListByCase returns the history of a case in insertion order.
func (r *EventRepository) ListByCase(ctx context.Context, caseID string) ([]models.CaseEvent, error) {
	query := "SELECT " + selectColumns(eventColumns) + " FROM case_events WHERE case_id = $1 ORDER BY seq ASC"
	var events []models.CaseEvent
	if err := r.db.SelectContext(ctx, &events, query, caseID); err != nil {
		return nil, fmt.Errorf("list case events: %w", err)
	}
	return events, nil
}
