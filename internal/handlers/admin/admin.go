package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/service/authservice"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type CreditService interface {
	AddCredits(ctx context.Context, caller domain.Caller, req *dto.AddCreditsRequestDTO) (int64, error)
	ListAccounts(ctx context.Context, caller domain.Caller) ([]domain.Account, error)
}

type RoleService interface {
	SetAdminRole(ctx context.Context, caller domain.Caller, email string) error
}

type AdminHandler struct {
	creditService CreditService
	roleService   RoleService
}

func New(creditService CreditService, roleService RoleService) *AdminHandler {
	return &AdminHandler{
		creditService: creditService,
		roleService:   roleService,
	}
}

// respondAccessError handles the errors every admin operation shares.
func respondAccessError(w http.ResponseWriter, err error) bool {
	switch {
	case utils.RespondWithValidation(w, err):
	case errors.Is(err, auth.ErrUnauthenticated):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, auth.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, "Permission denied")
	default:
		return false
	}
	return true
}

// AddCredits godoc
//
//	@Summary		Grant credits
//	@Description	Add credits to any account. The grant is recorded in the account's audit trail.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddCreditsRequestDTO	true	"Grant request"
//	@Success		200		{object}	dto.AddCreditsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/credits [post]
func (h *AdminHandler) AddCredits(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCreditsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	balance, err := h.creditService.AddCredits(r.Context(), auth.CallerFromContext(r.Context()), &req)
	if err != nil {
		if !respondAccessError(w, err) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddCreditsResponseDTO{
		AccountID: req.AccountID,
		Credits:   balance,
	})
}

// SetAdminRole godoc
//
//	@Summary		Grant admin role
//	@Description	Give the admin claim to the identity with the given email. It applies from the next login.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetAdminRoleRequestDTO	true	"Target identity"
//	@Success		200		{object}	dto.SetAdminRoleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Failure		404		{object}	utils.Response	"Identity not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/roles [post]
func (h *AdminHandler) SetAdminRole(w http.ResponseWriter, r *http.Request) {
	var req dto.SetAdminRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.roleService.SetAdminRole(r.Context(), auth.CallerFromContext(r.Context()), req.Email)
	if err != nil {
		switch {
		case respondAccessError(w, err):
		case errors.Is(err, authservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Identity not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SetAdminRoleResponseDTO{
		Message: "Admin role granted to " + req.Email,
	})
}

// ListAccounts godoc
//
//	@Summary		List accounts
//	@Description	Retrieve every business account with its balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountSummaryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Permission denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts [get]
func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.creditService.ListAccounts(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		if !respondAccessError(w, err) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	response := make([]dto.AccountSummaryDTO, 0, len(accounts))
	for _, a := range accounts {
		response = append(response, dto.AccountSummaryDTO{
			ID:           a.ID,
			BusinessName: a.BusinessName,
			OwnerName:    a.OwnerName,
			Email:        a.Email,
			Credits:      a.Credits,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
