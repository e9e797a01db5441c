package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

const (
	testSecret  = "whsec_test"
	testAccount = "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"
)

type mocks struct {
	plans    *MockPlanRepo
	accounts *MockAccountRepo
	audits   *MockAuditRepo
	events   *MockEventRepo
	tx       *pg.MockTXManager
	checkout *MockCheckoutClient
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		plans:    NewMockPlanRepo(ctrl),
		accounts: NewMockAccountRepo(ctrl),
		audits:   NewMockAuditRepo(ctrl),
		events:   NewMockEventRepo(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
		checkout: NewMockCheckoutClient(ctrl),
	}
	return New(m.plans, m.accounts, m.audits, m.events, m.tx, m.checkout, testSecret), m
}

func eventPayload(eventType, metadata string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"type": %q,
		"data": {"object": {"id": "cs_test_1", "object": "checkout.session", "metadata": %s}}
	}`, eventType, metadata))
}

func sign(payload []byte, secret string) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	}).Header
}

func runInTx(m mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestProcessWebhook(t *testing.T) {
	completed := eventPayload(eventCheckoutSessionCompleted, `{"userId":"`+testAccount+`","planId":"pro-500"}`)
	pro := &domain.Plan{ID: "pro-500", Name: "Pro", Credits: 500, BonusCredits: 50, Active: true}
	dbErr := errors.New("database error")

	tests := []struct {
		name        string
		payload     []byte
		signature   func(payload []byte) string
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name:    "Completed checkout grants plan credits and bonus",
			payload: completed,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").Return(pro, nil)
				runInTx(m)
				m.events.EXPECT().Register(gomock.Any(), &domain.ProcessedEvent{
					EventID:        "evt_1",
					EventType:      eventCheckoutSessionCompleted,
					AccountID:      testAccount,
					CreditsGranted: 550,
				}).Return(true, nil)
				m.accounts.EXPECT().AddCredits(gomock.Any(), testAccount, int64(550)).Return(int64(553), true, nil)
				m.audits.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.CreditAudit) error {
					assert.Equal(t, domain.SystemPaymentActor, a.ActorID)
					assert.Equal(t, int64(550), a.Amount)
					assert.Equal(t, domain.EventTagPaymentComplete, a.EventTag)
					assert.Equal(t, "Payment for plan pro-500 via Stripe.", a.Reason)
					assert.Equal(t, "pro-500", *a.PlanID)
					assert.Equal(t, "cs_test_1", *a.PaymentRef)
					return nil
				})
			},
		},
		{
			name:      "Bad signature mutates nothing",
			payload:   completed,
			signature: func(payload []byte) string { return sign(payload, "whsec_other") },
			prepareMock: func(m mocks) {
			},
			expectedErr: ErrSignatureInvalid,
		},
		{
			name:        "Missing signature header",
			payload:     completed,
			signature:   func([]byte) string { return "" },
			prepareMock: func(m mocks) {},
			expectedErr: ErrSignatureInvalid,
		},
		{
			name:        "Other event types are acknowledged",
			payload:     eventPayload("payment_intent.created", `{}`),
			prepareMock: func(m mocks) {},
		},
		{
			name:        "Missing plan id",
			payload:     eventPayload(eventCheckoutSessionCompleted, `{"userId":"`+testAccount+`"}`),
			prepareMock: func(m mocks) {},
			expectedErr: ErrMalformedEvent,
		},
		{
			name:        "Missing metadata",
			payload:     eventPayload(eventCheckoutSessionCompleted, `null`),
			prepareMock: func(m mocks) {},
			expectedErr: ErrMalformedEvent,
		},
		{
			name:        "Account id is not a uuid",
			payload:     eventPayload(eventCheckoutSessionCompleted, `{"userId":"nope","planId":"pro-500"}`),
			prepareMock: func(m mocks) {},
			expectedErr: ErrMalformedEvent,
		},
		{
			name:    "Unconfigured plan grants nothing",
			payload: completed,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").Return(nil, nil)
			},
		},
		{
			name:    "Plan lookup failure grants nothing",
			payload: completed,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").Return(nil, dbErr)
			},
		},
		{
			name:    "Inactive plan grants nothing",
			payload: completed,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").Return(&domain.Plan{ID: "pro-500", Credits: 500}, nil)
			},
		},
		{
			name:    "Redelivered event is a no-op",
			payload: completed,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").Return(pro, nil)
				runInTx(m)
				m.events.EXPECT().Register(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name:    "Account does not exist",
			payload: completed,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").Return(pro, nil)
				runInTx(m)
				m.events.EXPECT().Register(gomock.Any(), gomock.Any()).Return(true, nil)
				m.accounts.EXPECT().AddCredits(gomock.Any(), testAccount, int64(550)).Return(int64(0), false, nil)
			},
			expectedErr: ErrMalformedEvent,
		},
		{
			name:    "Storage failure is surfaced for redelivery",
			payload: completed,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").Return(pro, nil)
				runInTx(m)
				m.events.EXPECT().Register(gomock.Any(), gomock.Any()).Return(true, nil)
				m.accounts.EXPECT().AddCredits(gomock.Any(), testAccount, int64(550)).Return(int64(550), true, nil)
				m.audits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			signature := sign(tt.payload, testSecret)
			if tt.signature != nil {
				signature = tt.signature(tt.payload)
			}

			err := service.ProcessWebhook(context.Background(), tt.payload, signature)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	caller := domain.Caller{ID: testAccount, Role: domain.RoleBusiness}
	validReq := func() *dto.CheckoutRequestDTO {
		return &dto.CheckoutRequestDTO{
			PlanID:     "pro-500",
			SuccessURL: "https://app.example.com/billing?ok=1",
			CancelURL:  "https://app.example.com/billing",
		}
	}

	tests := []struct {
		name        string
		caller      domain.Caller
		req         func() *dto.CheckoutRequestDTO
		prepareMock func(m mocks)
		expected    *CheckoutSession
		expectedErr error
		wantFields  bool
	}{
		{
			name:   "Session created",
			caller: caller,
			req:    validReq,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").
					Return(&domain.Plan{ID: "pro-500", Credits: 500, Active: true}, nil)
				m.checkout.EXPECT().New(gomock.Any()).DoAndReturn(func(p *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
					assert.Equal(t, string(stripe.CheckoutSessionModePayment), *p.Mode)
					require.Len(t, p.LineItems, 1)
					assert.Equal(t, "pro-500", *p.LineItems[0].Price)
					assert.Equal(t, int64(1), *p.LineItems[0].Quantity)
					assert.Equal(t, testAccount, p.Metadata[metadataUserID])
					assert.Equal(t, "pro-500", p.Metadata[metadataPlanID])
					return &stripe.CheckoutSession{ID: "cs_test_9", URL: "https://checkout.stripe.com/c/cs_test_9"}, nil
				})
			},
			expected: &CheckoutSession{ID: "cs_test_9", URL: "https://checkout.stripe.com/c/cs_test_9"},
		},
		{
			name:        "Anonymous caller",
			req:         validReq,
			prepareMock: func(m mocks) {},
			expectedErr: auth.ErrUnauthenticated,
		},
		{
			name:   "Invalid urls",
			caller: caller,
			req: func() *dto.CheckoutRequestDTO {
				return &dto.CheckoutRequestDTO{PlanID: "pro-500", SuccessURL: "nope"}
			},
			prepareMock: func(m mocks) {},
			wantFields:  true,
		},
		{
			name:   "Unknown plan",
			caller: caller,
			req:    validReq,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").Return(nil, nil)
			},
			expectedErr: ErrPlanNotFound,
		},
		{
			name:   "Provider error",
			caller: caller,
			req:    validReq,
			prepareMock: func(m mocks) {
				m.plans.EXPECT().FindByID(gomock.Any(), "pro-500").
					Return(&domain.Plan{ID: "pro-500", Credits: 500, Active: true}, nil)
				m.checkout.EXPECT().New(gomock.Any()).Return(nil, errors.New("card declined"))
			},
			expectedErr: ErrProviderFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			session, err := service.CreateCheckoutSession(context.Background(), tt.caller, tt.req())

			switch {
			case tt.wantFields:
				var verr *validate.Error
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, "successUrl")
				assert.Contains(t, verr.Fields, "cancelUrl")
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, session)
		})
	}
}

func TestListPlans(t *testing.T) {
	service, m := NewMock(t)
	m.plans.EXPECT().ListActive(gomock.Any()).Return([]domain.Plan{{ID: "starter-50"}}, nil)

	plans, err := service.ListPlans(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.Plan{{ID: "starter-50"}}, plans)
}
