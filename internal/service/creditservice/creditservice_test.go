package creditservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

const accountID = "5b1f0c6e-8a7d-4a52-9c1e-2f3b4d5e6f70"

var (
	admin    = domain.Caller{ID: "admin-1", Role: domain.RoleBusiness, Admin: true}
	business = domain.Caller{ID: accountID, Role: domain.RoleBusiness}
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockAuditRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	auditRepo := NewMockAuditRepo(ctrl)
	tx := pg.NewMockTXManager(ctrl)
	return New(accountRepo, auditRepo, tx), accountRepo, auditRepo, tx
}

func TestAddCredits(t *testing.T) {
	dbErr := errors.New("database error")

	tests := []struct {
		name        string
		caller      domain.Caller
		req         dto.AddCreditsRequestDTO
		prepareMock func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager)
		wantBalance int64
		expectedErr error
		wantFields  map[string]string
	}{
		{
			name:   "Admin grants credits",
			caller: admin,
			req:    dto.AddCreditsRequestDTO{AccountID: accountID, Amount: 10, Reason: " Promo "},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {
				a.EXPECT().FindByID(gomock.Any(), accountID).Return(&domain.Account{ID: accountID, Credits: 3}, nil)
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				a.EXPECT().AddCredits(gomock.Any(), accountID, int64(10)).Return(int64(13), true, nil)
				au.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, audit *domain.CreditAudit) error {
					assert.Equal(t, "admin-1", audit.ActorID)
					assert.Equal(t, accountID, audit.AccountID)
					assert.Equal(t, int64(10), audit.Amount)
					assert.Equal(t, "Promo", audit.Reason)
					assert.Equal(t, domain.EventTagAdminAdjustment, audit.EventTag)
					assert.NotEmpty(t, audit.ID)
					return nil
				})
			},
			wantBalance: 13,
		},
		{
			name:        "Non-admin refused before any read",
			caller:      business,
			req:         dto.AddCreditsRequestDTO{AccountID: accountID, Amount: 10, Reason: "Promo"},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {},
			expectedErr: auth.ErrPermissionDenied,
		},
		{
			name:        "Anonymous caller",
			req:         dto.AddCreditsRequestDTO{AccountID: accountID, Amount: 10, Reason: "Promo"},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {},
			expectedErr: auth.ErrUnauthenticated,
		},
		{
			name:        "Non-admin with invalid payload still gets permission denied",
			caller:      business,
			req:         dto.AddCreditsRequestDTO{Amount: -1},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {},
			expectedErr: auth.ErrPermissionDenied,
		},
		{
			name:        "Zero amount and empty reason",
			caller:      admin,
			req:         dto.AddCreditsRequestDTO{AccountID: accountID, Amount: 0, Reason: "  "},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {},
			wantFields:  map[string]string{"amount": "gt", "reason": "required"},
		},
		{
			name:        "Missing account id",
			caller:      admin,
			req:         dto.AddCreditsRequestDTO{Amount: 5, Reason: "Promo"},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {},
			wantFields:  map[string]string{"accountId": "required"},
		},
		{
			name:        "Account id is not a uuid",
			caller:      admin,
			req:         dto.AddCreditsRequestDTO{AccountID: "abc", Amount: 5, Reason: "Promo"},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {},
			wantFields:  map[string]string{"accountId": "uuid"},
		},
		{
			name:   "Unknown target account",
			caller: admin,
			req:    dto.AddCreditsRequestDTO{AccountID: "9d3c2b1a-0f4e-4d6c-8b7a-5e4f3d2c1b0a", Amount: 5, Reason: "Promo"},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {
				a.EXPECT().FindByID(gomock.Any(), "9d3c2b1a-0f4e-4d6c-8b7a-5e4f3d2c1b0a").Return(nil, nil)
			},
			wantFields: map[string]string{"accountId": "exists"},
		},
		{
			name:   "Audit write fails rolls back",
			caller: admin,
			req:    dto.AddCreditsRequestDTO{AccountID: accountID, Amount: 5, Reason: "Promo"},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {
				a.EXPECT().FindByID(gomock.Any(), accountID).Return(&domain.Account{ID: accountID}, nil)
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				a.EXPECT().AddCredits(gomock.Any(), accountID, int64(5)).Return(int64(5), true, nil)
				au.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name:   "Account removed inside the transaction",
			caller: admin,
			req:    dto.AddCreditsRequestDTO{AccountID: accountID, Amount: 5, Reason: "Promo"},
			prepareMock: func(a *MockAccountRepo, au *MockAuditRepo, tx *pg.MockTXManager) {
				a.EXPECT().FindByID(gomock.Any(), accountID).Return(&domain.Account{ID: accountID}, nil)
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				a.EXPECT().AddCredits(gomock.Any(), accountID, int64(5)).Return(int64(0), false, nil)
			},
			wantFields: map[string]string{"accountId": "exists"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, auditRepo, tx := NewMock(t)
			tt.prepareMock(accountRepo, auditRepo, tx)
			req := tt.req

			balance, err := service.AddCredits(context.Background(), tt.caller, &req)

			switch {
			case tt.wantFields != nil:
				var verr *validate.Error
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantFields, verr.Fields)
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, balance)
		})
	}
}

func TestListAccounts(t *testing.T) {
	t.Run("Admin lists accounts", func(t *testing.T) {
		service, accountRepo, _, _ := NewMock(t)
		accountRepo.EXPECT().List(gomock.Any()).Return([]domain.Account{{ID: accountID}, {ID: "acc-2"}}, nil)

		accounts, err := service.ListAccounts(context.Background(), admin)

		assert.NoError(t, err)
		assert.Len(t, accounts, 2)
	})

	t.Run("Business refused", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		accounts, err := service.ListAccounts(context.Background(), business)

		assert.ErrorIs(t, err, auth.ErrPermissionDenied)
		assert.Nil(t, accounts)
	})
}

func TestGetAccount(t *testing.T) {
	tests := []struct {
		name        string
		caller      domain.Caller
		prepareMock func(a *MockAccountRepo)
		expectedErr error
	}{
		{
			name:   "Own account",
			caller: business,
			prepareMock: func(a *MockAccountRepo) {
				a.EXPECT().FindByID(gomock.Any(), accountID).Return(&domain.Account{ID: accountID, Credits: 7}, nil)
			},
		},
		{
			name:   "No account row",
			caller: business,
			prepareMock: func(a *MockAccountRepo) {
				a.EXPECT().FindByID(gomock.Any(), accountID).Return(nil, nil)
			},
			expectedErr: ErrAccountNotFound,
		},
		{
			name:        "Anonymous",
			prepareMock: func(a *MockAccountRepo) {},
			expectedErr: auth.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _ := NewMock(t)
			tt.prepareMock(accountRepo)

			account, err := service.GetAccount(context.Background(), tt.caller)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), account.Credits)
			}
		})
	}
}

func TestGetAudits(t *testing.T) {
	service, _, auditRepo, _ := NewMock(t)
	auditRepo.EXPECT().FindByAccountID(gomock.Any(), accountID).Return([]domain.CreditAudit{{ID: "aud-1"}}, nil)

	audits, err := service.GetAudits(context.Background(), business)

	assert.NoError(t, err)
	assert.Equal(t, []domain.CreditAudit{{ID: "aud-1"}}, audits)
}
