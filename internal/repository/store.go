package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/pkg/database"
)

// ChangeSet is every write produced by one workflow operation. Nil entries
// are skipped.
type ChangeSet struct {
	CreateCase          *models.DisciplinaryCase
	UpdateCase          *models.DisciplinaryCase
	CreateAction        *models.DisciplinaryAction
	UpdateAction        *models.DisciplinaryAction
	CreateAppeal        *models.Appeal
	UpdateAppeal        *models.Appeal
	CreateInvestigation *models.Investigation
	UpdateInvestigation *models.Investigation
	Events              []models.CaseEvent
}

// Store commits workflow change sets atomically.
type Store struct {
	db *sqlx.DB
}

// NewStore constructs the store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Apply writes cs in a single transaction: creates first so foreign keys
// resolve, then updates, then the events describing them.
func (s *Store) Apply(ctx context.Context, cs ChangeSet) error {
	return database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		cases := &CaseRepository{db: tx}
		actions := &ActionRepository{db: tx}
		appeals := &AppealRepository{db: tx}
		investigations := &InvestigationRepository{db: tx}

		if cs.CreateCase != nil {
			if err := cases.Create(ctx, cs.CreateCase); err != nil {
				return err
			}
		}
		if cs.CreateAction != nil {
			if err := actions.Create(ctx, cs.CreateAction); err != nil {
				return err
			}
		}
		if cs.CreateAppeal != nil {
			if err := appeals.Create(ctx, cs.CreateAppeal); err != nil {
				return err
			}
		}
		if cs.CreateInvestigation != nil {
			if err := investigations.Create(ctx, cs.CreateInvestigation); err != nil {
				return err
			}
		}
		if cs.UpdateCase != nil {
			if err := cases.Update(ctx, cs.UpdateCase); err != nil {
				return err
			}
		}
		if cs.UpdateAction != nil {
			if err := actions.Update(ctx, cs.UpdateAction); err != nil {
				return err
			}
		}
		if cs.UpdateAppeal != nil {
			if err := appeals.Update(ctx, cs.UpdateAppeal); err != nil {
				return err
			}
		}
		if cs.UpdateInvestigation != nil {
			if err := investigations.Update(ctx, cs.UpdateInvestigation); err != nil {
				return err
			}
		}
		if len(cs.Events) == 0 {
			return nil
		}
		return (&EventRepository{db: tx}).Append(ctx, cs.Events)
	})
}
