package auditrepo

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

// Create appends an audit entry. Entries are never updated or removed.
func (repo *Repository) Create(ctx context.Context, audit *domain.CreditAudit) error {
	query := `
		INSERT INTO credit_audits (id, account_id, actor_id, amount, reason, event_tag, plan_id, payment_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query,
		audit.ID, audit.AccountID, audit.ActorID, audit.Amount,
		audit.Reason, audit.EventTag, audit.PlanID, audit.PaymentRef,
	).Scan(&audit.CreatedAt)
	if err != nil {
		zap.L().Error("can't save credit audit", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByAccountID(ctx context.Context, accountID string) ([]domain.CreditAudit, error) {
	query := `
		SELECT id, account_id, actor_id, amount, reason, event_tag, plan_id, payment_ref, created_at
		FROM credit_audits
		WHERE account_id = $1
		ORDER BY created_at DESC
	`
	rows, err := repo.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get credit audits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var audits []domain.CreditAudit
	for rows.Next() {
		var a domain.CreditAudit
		if err := rows.Scan(&a.ID, &a.AccountID, &a.ActorID, &a.Amount, &a.Reason, &a.EventTag, &a.PlanID, &a.PaymentRef, &a.CreatedAt); err != nil {
			zap.L().Error("can't scan credit audit row", zap.Error(err))
			return nil, err
		}
		audits = append(audits, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return audits, nil
}
