package repo

import (
	"context"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/deliverypartner/internal/pg"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(pg.New(mockDB))
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.IdentityRepo)
	assert.NotNil(t, repo.AccountRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.AuditRepo)
	assert.NotNil(t, repo.EventRepo)
	assert.NotNil(t, repo.PlanRepo)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoriesShareTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	txManager := pg.NewTXManager(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET credits = credits - 1`)).
		WithArgs("acc-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM identities WHERE id = $1`)).
		WithArgs("acc-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectRollback()

	err := txManager.Begin(context.Background(), func(ctx context.Context) error {
		if _, err := repo.AccountRepo.DecrementCredit(ctx, "acc-1"); err != nil {
			return err
		}
		if err := repo.IdentityRepo.Delete(ctx, "acc-1"); err != nil {
			return err
		}
		return context.Canceled
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
