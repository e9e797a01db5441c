package eventrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Register records a provider event. It returns false when the event id was
// already recorded, in which case nothing is written.
func (repo *Repository) Register(ctx context.Context, event *domain.ProcessedEvent) (bool, error) {
	query := `
		INSERT INTO processed_events (event_id, event_type, account_id, credits_granted)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING
	`
	tag, err := repo.db.Exec(ctx, query, event.EventID, event.EventType, event.AccountID, event.CreditsGranted)
	if err != nil {
		zap.L().Error("can't register processed event", zap.String("event_id", event.EventID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
