package models

import (
	"encoding/json"
	"time"
)

// EventEntity names the record type a CaseEvent refers to.
type EventEntity string

const (
	EntityCase          EventEntity = "case"
	EntityAction        EventEntity = "action"
	EntityAppeal        EventEntity = "appeal"
	EntityInvestigation EventEntity = "investigation"
)

// CaseEvent is one entry of the structured case history.
type CaseEvent struct {
	ID         string          `db:"id" json:"id"`
	CaseID     string          `db:"case_id" json:"caseId"`
	Entity     EventEntity     `db:"entity" json:"entity"`
	EntityID   string          `db:"entity_id" json:"entityId"`
	Transition string          `db:"transition" json:"transition"`
	ActorID    string          `db:"actor_id" json:"actorId"`
	FromState  *string         `db:"from_state" json:"fromState,omitempty"`
	ToState    *string         `db:"to_state" json:"toState,omitempty"`
	Details    json.RawMessage `db:"details" json:"details,omitempty"`
	OccurredAt time.Time       `db:"occurred_at" json:"occurredAt"`

	Text string `db:"-" json:"text,omitempty"`
}
