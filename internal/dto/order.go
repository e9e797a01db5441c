package dto

import "github.com/GlebRadaev/deliverypartner/internal/domain"

type CreateOrderRequestDTO struct {
	CustomerName    string      `json:"customerName"              validate:"required"`
	CustomerPhone   string      `json:"customerPhone"             validate:"phone"`
	DeliveryAddress LocationDTO `json:"deliveryAddress"`
	Notes           *string     `json:"notes,omitempty"`
	AmountToCollect *float64    `json:"amountToCollect,omitempty" validate:"omitempty,gte=0"`
}

type CreateOrderResponseDTO struct {
	OrderID    string             `json:"orderId"`
	Status     domain.OrderStatus `json:"status"`
	DispatchID *string            `json:"dispatchId,omitempty"`
}

// DispatchFailedResponseDTO is returned when the order was stored and charged but the provider refused it.
type DispatchFailedResponseDTO struct {
	Message string             `json:"message"`
	OrderID string             `json:"orderId"`
	Status  domain.OrderStatus `json:"status"`
}

type OrderResponseDTO struct {
	ID              string             `json:"id"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress domain.Location    `json:"deliveryAddress"`
	Notes           *string            `json:"notes,omitempty"`
	AmountToCollect *float64           `json:"amountToCollect,omitempty"`
	Status          domain.OrderStatus `json:"status"`
	DispatchID      *string            `json:"dispatchId,omitempty"`
	CreatedAt       string             `json:"createdAt"`
}
