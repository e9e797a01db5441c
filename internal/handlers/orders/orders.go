package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/service/orderservice"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	CreateOrder(ctx context.Context, caller domain.Caller, req *dto.CreateOrderRequestDTO) (*domain.Order, error)
	ListOrders(ctx context.Context, caller domain.Caller) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a delivery order
//	@Description	Spend one credit, store the order and relay it to the dispatch provider.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response					"Invalid order payload"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient credits"
//	@Failure		404		{object}	utils.Response					"Account not found"
//	@Failure		502		{object}	dto.DispatchFailedResponseDTO	"Order stored but dispatch failed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), auth.CallerFromContext(r.Context()), &req)
	if err != nil {
		if utils.RespondWithValidation(w, err) {
			return
		}
		switch {
		case errors.Is(err, auth.ErrUnauthenticated):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, orderservice.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient credits")
		case errors.Is(err, orderservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, orderservice.ErrDispatchFailed) && order != nil:
			utils.RespondWithJSON(w, http.StatusBadGateway, dto.DispatchFailedResponseDTO{
				Message: "Order was saved but could not be sent to dispatch",
				OrderID: order.ID,
				Status:  order.Status,
			})
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateOrderResponseDTO{
		OrderID:    order.ID,
		Status:     order.Status,
		DispatchID: order.DispatchID,
	})
}

// GetOrders godoc
//
//	@Summary		List own orders
//	@Description	Retrieve the caller's orders, newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.OrderResponseDTO{
			ID:              order.ID,
			CustomerName:    order.CustomerName,
			CustomerPhone:   order.CustomerPhone,
			DeliveryAddress: order.DeliveryAddress,
			Notes:           order.Notes,
			AmountToCollect: order.AmountToCollect,
			Status:          order.Status,
			DispatchID:      order.DispatchID,
			CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
