package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
)

var accountRowColumns = []string{
	"id", "email", "owner_name", "business_name", "contact_phone",
	"pickup_description", "pickup_lat", "pickup_lng", "credits", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func sampleAccount(createdAt time.Time) *domain.Account {
	return &domain.Account{
		ID:           "acc-1",
		Email:        "owner@tacos.mx",
		OwnerName:    "Ana",
		BusinessName: "Tacos Ana",
		ContactPhone: "5551234567",
		PickupLocation: domain.Location{
			Description: "Av. Reforma 1",
			Lat:         19.43,
			Lng:         -99.13,
		},
		Credits:   3,
		CreatedAt: createdAt,
	}
}

func accountRows(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountRowColumns).AddRow(
		a.ID, a.Email, a.OwnerName, a.BusinessName, a.ContactPhone,
		a.PickupLocation.Description, a.PickupLocation.Lat, a.PickupLocation.Lng,
		a.Credits, a.CreatedAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO accounts (id, email, owner_name, business_name, contact_phone, pickup_description, pickup_lat, pickup_lng, credits)`)

	tests := []struct {
		name      string
		mockSetup func(a *domain.Account)
		expectErr bool
	}{
		{
			name: "Account created with zero credits",
			mockSetup: func(a *domain.Account) {
				mock.ExpectQuery(query).
					WithArgs(a.ID, a.Email, a.OwnerName, a.BusinessName, a.ContactPhone,
						a.PickupLocation.Description, a.PickupLocation.Lat, a.PickupLocation.Lng).
					WillReturnRows(pgxmock.NewRows([]string{"credits", "created_at"}).AddRow(int64(0), createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func(a *domain.Account) {
				mock.ExpectQuery(query).
					WithArgs(a.ID, a.Email, a.OwnerName, a.BusinessName, a.ContactPhone,
						a.PickupLocation.Description, a.PickupLocation.Lat, a.PickupLocation.Lng).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := sampleAccount(time.Time{})
			tt.mockSetup(account)

			err := repo.Create(context.Background(), account)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), account.Credits)
				assert.Equal(t, createdAt, account.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`)

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Existing account",
			id:   "acc-1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("acc-1").WillReturnRows(accountRows(sampleAccount(createdAt)))
			},
			result: sampleAccount(createdAt),
		},
		{
			name: "Missing account returns nil",
			id:   "acc-404",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("acc-404").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   "acc-1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("acc-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1 FOR UPDATE`)).
		WithArgs("acc-1").
		WillReturnRows(accountRows(sampleAccount(createdAt)))

	result, err := repo.FindByIDForUpdate(context.Background(), "acc-1")

	assert.NoError(t, err)
	assert.Equal(t, sampleAccount(createdAt), result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DecrementCredit(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE accounts SET credits = credits - 1 WHERE id = $1 AND credits >= 1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		spent     bool
	}{
		{
			name: "Credit spent",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("acc-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			spent: true,
		},
		{
			name: "Balance already zero",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("acc-1").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			spent: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("acc-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			spent, err := repo.DecrementCredit(context.Background(), "acc-1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.spent, spent)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddCredits(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE accounts SET credits = credits + $1 WHERE id = $2 RETURNING credits`)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		wantBalance int64
		wantFound   bool
	}{
		{
			name: "Balance incremented",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(550), "acc-1").
					WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(int64(553)))
			},
			wantBalance: 553,
			wantFound:   true,
		},
		{
			name: "Unknown account",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(550), "acc-1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(550), "acc-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			balance, found, err := repo.AddCredits(context.Background(), "acc-1", 550)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, balance)
			assert.Equal(t, tt.wantFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`FROM accounts ORDER BY business_name ASC`)

	t.Run("Returns all accounts", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(accountRows(sampleAccount(createdAt)))

		accounts, err := repo.List(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []domain.Account{*sampleAccount(createdAt)}, accounts)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		accounts, err := repo.List(context.Background())

		assert.Error(t, err)
		assert.Nil(t, accounts)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
