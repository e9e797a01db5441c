package identityrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
)

const identityColumns = `id, email, password_hash, display_name, role, admin, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanIdentity(row pgx.Row) (*domain.Identity, error) {
	var i domain.Identity
	err := row.Scan(&i.ID, &i.Email, &i.PasswordHash, &i.DisplayName, &i.Role, &i.Admin, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Identity, error) {
	identity, err := scanIdentity(repo.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find identity", zap.Error(err))
		return nil, err
	}
	return identity, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return repo.findOne(ctx, `SELECT `+identityColumns+` FROM identities WHERE email = $1`, email)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	return repo.findOne(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = $1`, id)
}

// Create stores the identity. A duplicate email surfaces as a pg unique violation.
func (repo *Repository) Create(ctx context.Context, identity *domain.Identity) error {
	query := `
		INSERT INTO identities (id, email, password_hash, display_name, role, admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query,
		identity.ID, identity.Email, identity.PasswordHash, identity.DisplayName, identity.Role, identity.Admin,
	).Scan(&identity.CreatedAt)
	if err != nil {
		zap.L().Error("can't save identity", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, `DELETE FROM identities WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete identity", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// SetAdmin grants the admin claim. False means no identity has that email.
func (repo *Repository) SetAdmin(ctx context.Context, email string) (bool, error) {
	tag, err := repo.db.Exec(ctx, `UPDATE identities SET admin = TRUE WHERE email = $1`, email)
	if err != nil {
		zap.L().Error("can't grant admin", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
