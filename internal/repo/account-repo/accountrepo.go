package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
)

const accountColumns = `id, email, owner_name, business_name, contact_phone, pickup_description, pickup_lat, pickup_lng, credits, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.OwnerName, &a.BusinessName, &a.ContactPhone,
		&a.PickupLocation.Description, &a.PickupLocation.Lat, &a.PickupLocation.Lng,
		&a.Credits, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, email, owner_name, business_name, contact_phone, pickup_description, pickup_lat, pickup_lng, credits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0)
		RETURNING credits, created_at
	`
	err := r.db.QueryRow(ctx, query,
		account.ID, account.Email, account.OwnerName, account.BusinessName, account.ContactPhone,
		account.PickupLocation.Description, account.PickupLocation.Lat, account.PickupLocation.Lng,
	).Scan(&account.Credits, &account.CreatedAt)
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// FindByIDForUpdate locks the account row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// DecrementCredit spends one credit; false means the balance was already zero.
func (r *Repository) DecrementCredit(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE accounts
		SET credits = credits - 1
		WHERE id = $1 AND credits >= 1
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't decrement credits", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) AddCredits(ctx context.Context, id string, amount int64) (int64, bool, error) {
	query := `
		UPDATE accounts
		SET credits = credits + $1
		WHERE id = $2
		RETURNING credits
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		zap.L().Error("can't add credits", zap.Error(err))
		return 0, false, err
	}
	return balance, true, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY business_name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}
