package paymentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

const (
	eventCheckoutSessionCompleted = "checkout.session.completed"

	metadataUserID = "userId"
	metadataPlanID = "planId"
)

type PlanRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Plan, error)
	ListActive(ctx context.Context) ([]domain.Plan, error)
}

type AccountRepo interface {
	AddCredits(ctx context.Context, id string, amount int64) (int64, bool, error)
}

type AuditRepo interface {
	Create(ctx context.Context, audit *domain.CreditAudit) error
}

type EventRepo interface {
	Register(ctx context.Context, event *domain.ProcessedEvent) (bool, error)
}

// CheckoutClient is satisfied by the stripe checkout session client.
type CheckoutClient interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Service struct {
	planRepo      PlanRepo
	accountRepo   AccountRepo
	auditRepo     AuditRepo
	eventRepo     EventRepo
	txManager     pg.TXManager
	checkout      CheckoutClient
	webhookSecret string
}

func New(
	planRepo PlanRepo,
	accountRepo AccountRepo,
	auditRepo AuditRepo,
	eventRepo EventRepo,
	txManager pg.TXManager,
	checkout CheckoutClient,
	webhookSecret string,
) *Service {
	return &Service{
		planRepo:      planRepo,
		accountRepo:   accountRepo,
		auditRepo:     auditRepo,
		eventRepo:     eventRepo,
		txManager:     txManager,
		checkout:      checkout,
		webhookSecret: webhookSecret,
	}
}

var (
	ErrSignatureInvalid = errors.New("webhook signature invalid")
	ErrMalformedEvent   = errors.New("malformed payment event")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrProviderFailed   = errors.New("payment provider failed")

	errAlreadyProcessed = errors.New("event already processed")
)

type CheckoutSession struct {
	ID  string
	URL string
}

// ProcessWebhook applies a signed payment notification. Events other than a
// completed checkout are acknowledged without effect. A redelivered event is a
// no-op.
func (s *Service) ProcessWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		zap.L().Warn("webhook signature verification failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	if string(event.Type) != eventCheckoutSessionCompleted {
		zap.L().Info("ignoring webhook event", zap.String("event_id", event.ID), zap.String("type", string(event.Type)))
		return nil
	}

	if event.Data == nil {
		zap.L().Error("webhook event without data", zap.String("event_id", event.ID))
		return ErrMalformedEvent
	}
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		zap.L().Error("can't decode checkout session", zap.String("event_id", event.ID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	accountID := session.Metadata[metadataUserID]
	planID := session.Metadata[metadataPlanID]
	if accountID == "" || planID == "" {
		zap.L().Error("checkout session metadata incomplete",
			zap.String("event_id", event.ID),
			zap.String("session_id", session.ID),
		)
		return ErrMalformedEvent
	}
	if _, err := uuid.Parse(accountID); err != nil {
		zap.L().Error("checkout session carries an invalid account id", zap.String("event_id", event.ID), zap.String("account_id", accountID))
		return ErrMalformedEvent
	}

	credits := s.planCredits(ctx, planID)
	if credits <= 0 {
		zap.L().Error("no credits granted for payment",
			zap.String("event_id", event.ID),
			zap.String("account_id", accountID),
			zap.String("plan_id", planID),
		)
		return nil
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.eventRepo.Register(ctx, &domain.ProcessedEvent{
			EventID:        event.ID,
			EventType:      string(event.Type),
			AccountID:      accountID,
			CreditsGranted: credits,
		})
		if err != nil {
			return err
		}
		if !inserted {
			return errAlreadyProcessed
		}

		_, found, err := s.accountRepo.AddCredits(ctx, accountID, credits)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: account %s does not exist", ErrMalformedEvent, accountID)
		}

		return s.auditRepo.Create(ctx, &domain.CreditAudit{
			ID:         uuid.NewString(),
			AccountID:  accountID,
			ActorID:    domain.SystemPaymentActor,
			Amount:     credits,
			Reason:     fmt.Sprintf("Payment for plan %s via Stripe.", planID),
			EventTag:   domain.EventTagPaymentComplete,
			PlanID:     &planID,
			PaymentRef: &session.ID,
		})
	})
	switch {
	case err == nil:
		zap.L().Info("credits granted for payment",
			zap.String("event_id", event.ID),
			zap.String("account_id", accountID),
			zap.Int64("credits", credits),
		)
		return nil
	case errors.Is(err, errAlreadyProcessed):
		zap.L().Info("duplicate webhook event ignored", zap.String("event_id", event.ID))
		return nil
	default:
		zap.L().Error("can't apply payment", zap.String("event_id", event.ID), zap.Error(err))
		return err
	}
}

// planCredits returns 0 when the plan is missing or cannot be read.
func (s *Service) planCredits(ctx context.Context, planID string) int64 {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		zap.L().Error("plan lookup failed", zap.String("plan_id", planID), zap.Error(err))
		return 0
	}
	if plan == nil {
		zap.L().Error("plan is not configured", zap.String("plan_id", planID))
		return 0
	}
	return plan.TotalCredits()
}

func (s *Service) CreateCheckoutSession(ctx context.Context, caller domain.Caller, req *dto.CheckoutRequestDTO) (*CheckoutSession, error) {
	if err := auth.Authorize(caller, auth.CapabilityOwnAccount); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.TotalCredits() == 0 {
		return nil, ErrPlanNotFound
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(plan.ID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(caller.ID),
	}
	params.Context = ctx
	params.AddMetadata(metadataUserID, caller.ID)
	params.AddMetadata(metadataPlanID, plan.ID)

	session, err := s.checkout.New(params)
	if err != nil {
		zap.L().Error("can't create checkout session", zap.String("plan_id", plan.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	zap.L().Info("checkout session created", zap.String("session_id", session.ID), zap.String("account_id", caller.ID))
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.planRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list plans", zap.Error(err))
		return nil, err
	}
	return plans, nil
}
