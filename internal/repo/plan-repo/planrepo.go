package planrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Plan, error) {
	var p domain.Plan
	err := repo.db.QueryRow(ctx,
		`SELECT id, name, credits, bonus_credits, active FROM payment_plans WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Credits, &p.BonusCredits, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find plan", zap.String("plan_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (repo *Repository) ListActive(ctx context.Context) ([]domain.Plan, error) {
	rows, err := repo.db.Query(ctx,
		`SELECT id, name, credits, bonus_credits, active FROM payment_plans WHERE active ORDER BY credits ASC`)
	if err != nil {
		zap.L().Error("can't list plans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Credits, &p.BonusCredits, &p.Active); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}
