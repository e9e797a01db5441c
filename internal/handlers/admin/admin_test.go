package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/service/authservice"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

func NewMock(t *testing.T) (*AdminHandler, *MockCreditService, *MockRoleService) {
	ctrl := gomock.NewController(t)
	credits := NewMockCreditService(ctrl)
	roles := NewMockRoleService(ctrl)
	return New(credits, roles), credits, roles
}

var admin = domain.Caller{ID: "admin-1", Role: domain.RoleBusiness, Admin: true}

func request(method, url, body string) *http.Request {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	return req.WithContext(auth.WithCaller(req.Context(), admin))
}

func TestAddCredits(t *testing.T) {
	handler, credits, _ := NewMock(t)
	body := `{"accountId":"acc-1","amount":5,"reason":"Welcome bonus"}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Credits granted",
			body: body,
			prepareMock: func() {
				credits.EXPECT().AddCredits(gomock.Any(), admin, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ domain.Caller, req *dto.AddCreditsRequestDTO) (int64, error) {
						assert.Equal(t, &dto.AddCreditsRequestDTO{AccountID: "acc-1", Amount: 5, Reason: "Welcome bonus"}, req)
						return 8, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"accountId":"acc-1","credits":8}`,
		},
		{
			name:         "Malformed json",
			body:         `{"amount":"five"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Non admin caller",
			body: body,
			prepareMock: func() {
				credits.EXPECT().AddCredits(gomock.Any(), admin, gomock.Any()).Return(int64(0), auth.ErrPermissionDenied)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"Permission denied"}`,
		},
		{
			name: "Unknown target account",
			body: body,
			prepareMock: func() {
				credits.EXPECT().AddCredits(gomock.Any(), admin, gomock.Any()).Return(int64(0), validate.NewError("accountId", "exists"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Validation failed","fields":{"accountId":"exists"}}`,
		},
		{
			name: "Storage failure",
			body: body,
			prepareMock: func() {
				credits.EXPECT().AddCredits(gomock.Any(), admin, gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.AddCredits(rr, request(http.MethodPost, "/api/admin/credits", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestSetAdminRole(t *testing.T) {
	handler, _, roles := NewMock(t)
	body := `{"email":"ops@tacos.mx"}`

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Role granted",
			prepareMock: func() {
				roles.EXPECT().SetAdminRole(gomock.Any(), admin, "ops@tacos.mx").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown identity",
			prepareMock: func() {
				roles.EXPECT().SetAdminRole(gomock.Any(), admin, "ops@tacos.mx").Return(authservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Permission denied",
			prepareMock: func() {
				roles.EXPECT().SetAdminRole(gomock.Any(), admin, "ops@tacos.mx").Return(auth.ErrPermissionDenied)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Unauthenticated",
			prepareMock: func() {
				roles.EXPECT().SetAdminRole(gomock.Any(), admin, "ops@tacos.mx").Return(auth.ErrUnauthenticated)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				roles.EXPECT().SetAdminRole(gomock.Any(), admin, "ops@tacos.mx").Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.SetAdminRole(rr, request(http.MethodPost, "/api/admin/roles", body))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}

	t.Run("Success message", func(t *testing.T) {
		roles.EXPECT().SetAdminRole(gomock.Any(), admin, "ops@tacos.mx").Return(nil)
		rr := httptest.NewRecorder()

		handler.SetAdminRole(rr, request(http.MethodPost, "/api/admin/roles", body))

		assert.JSONEq(t, `{"message":"Admin role granted to ops@tacos.mx"}`, rr.Body.String())
	})
}

func TestListAccounts(t *testing.T) {
	handler, credits, _ := NewMock(t)

	t.Run("Accounts listed", func(t *testing.T) {
		credits.EXPECT().ListAccounts(gomock.Any(), admin).Return([]domain.Account{
			{ID: "acc-1", BusinessName: "Tacos Ana", OwnerName: "Ana", Email: "owner@tacos.mx", Credits: 3},
		}, nil)
		rr := httptest.NewRecorder()

		handler.ListAccounts(rr, request(http.MethodGet, "/api/admin/accounts", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":"acc-1","businessName":"Tacos Ana","ownerName":"Ana","email":"owner@tacos.mx","credits":3}]`, rr.Body.String())
	})

	t.Run("Permission denied", func(t *testing.T) {
		credits.EXPECT().ListAccounts(gomock.Any(), admin).Return(nil, auth.ErrPermissionDenied)
		rr := httptest.NewRecorder()

		handler.ListAccounts(rr, request(http.MethodGet, "/api/admin/accounts", ""))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Storage failure", func(t *testing.T) {
		credits.EXPECT().ListAccounts(gomock.Any(), admin).Return(nil, errors.New("database error"))
		rr := httptest.NewRecorder()

		handler.ListAccounts(rr, request(http.MethodGet, "/api/admin/accounts", ""))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
