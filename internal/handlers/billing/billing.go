package billing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/service/paymentservice"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/utils"
)

//go:generate mockgen -source=billing.go -destination=mock_billing.go -package=billing

const (
	signatureHeader = "Stripe-Signature"
	maxWebhookBytes = 64 << 10
)

type Service interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	CreateCheckoutSession(ctx context.Context, caller domain.Caller, req *dto.CheckoutRequestDTO) (*paymentservice.CheckoutSession, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) error
}

type BillingHandler struct {
	paymentService Service
}

func New(paymentService Service) *BillingHandler {
	return &BillingHandler{
		paymentService: paymentService,
	}
}

// GetPlans godoc
//
//	@Summary		List payment plans
//	@Description	Retrieve the active credit packages that can be bought.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PlanResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/plans [get]
func (h *BillingHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.paymentService.ListPlans(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PlanResponseDTO, 0, len(plans))
	for _, plan := range plans {
		response = append(response, dto.PlanResponseDTO{
			ID:           plan.ID,
			Name:         plan.Name,
			Credits:      plan.Credits,
			BonusCredits: plan.BonusCredits,
			TotalCredits: plan.TotalCredits(),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Checkout godoc
//
//	@Summary		Start a checkout
//	@Description	Create a hosted payment session for a plan. Credits are granted when the provider confirms payment.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Checkout request"
//	@Success		200		{object}	dto.CheckoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Plan not found"
//	@Failure		502		{object}	utils.Response	"Payment provider failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/checkout [post]
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.paymentService.CreateCheckoutSession(r.Context(), auth.CallerFromContext(r.Context()), &req)
	if err != nil {
		if utils.RespondWithValidation(w, err) {
			return
		}
		switch {
		case errors.Is(err, auth.ErrUnauthenticated):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, paymentservice.ErrPlanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Plan not found")
		case errors.Is(err, paymentservice.ErrProviderFailed):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment provider failed")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		SessionID: session.ID,
		URL:       session.URL,
	})
}

// Webhook godoc
//
//	@Summary		Payment provider webhook
//	@Description	Receive signed payment events. A completed checkout grants the plan credits once per event.
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string	true	"Provider signature"
//	@Success		200					{object}	dto.WebhookResponseDTO
//	@Failure		400					{object}	utils.Response	"Invalid signature or malformed event"
//	@Failure		500					{object}	utils.Response	"Event could not be applied"
//	@Router			/api/billing/webhook [post]
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	err = h.paymentService.ProcessWebhook(r.Context(), payload, r.Header.Get(signatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrSignatureInvalid):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid signature")
		case errors.Is(err, paymentservice.ErrMalformedEvent):
			utils.RespondWithError(w, http.StatusBadRequest, "Malformed event")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Received: true})
}
