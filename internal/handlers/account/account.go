package account

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/service/creditservice"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/utils"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=account

type Service interface {
	GetAccount(ctx context.Context, caller domain.Caller) (*domain.Account, error)
	GetAudits(ctx context.Context, caller domain.Caller) ([]domain.CreditAudit, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetAccount godoc
//
//	@Summary		Get own account
//	@Description	Retrieve the business profile and current credit balance of the caller.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/account [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountService.GetAccount(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnauthenticated):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, creditservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		ID:                   account.ID,
		Email:                account.Email,
		OwnerName:            account.OwnerName,
		BusinessName:         account.BusinessName,
		ContactPhone:         account.ContactPhone,
		DefaultPickupAddress: account.PickupLocation,
		Credits:              account.Credits,
		CreatedAt:            account.CreatedAt.Format(time.RFC3339),
	})
}

// GetAudits godoc
//
//	@Summary		Get credit audit trail
//	@Description	List the credit grants applied to the caller's account, newest first.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AuditResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/account/audits [get]
func (h *AccountHandler) GetAudits(w http.ResponseWriter, r *http.Request) {
	audits, err := h.accountService.GetAudits(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AuditResponseDTO, 0, len(audits))
	for _, a := range audits {
		response = append(response, dto.AuditResponseDTO{
			ID:         a.ID,
			ActorID:    a.ActorID,
			Amount:     a.Amount,
			Reason:     a.Reason,
			EventTag:   a.EventTag,
			PlanID:     a.PlanID,
			PaymentRef: a.PaymentRef,
			CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
