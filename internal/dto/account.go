package dto

import "github.com/GlebRadaev/deliverypartner/internal/domain"

type AccountResponseDTO struct {
	ID                   string          `json:"id"`
	Email                string          `json:"email"`
	OwnerName            string          `json:"ownerName"`
	BusinessName         string          `json:"businessName"`
	ContactPhone         string          `json:"contactPhone"`
	DefaultPickupAddress domain.Location `json:"defaultPickupAddress"`
	Credits              int64           `json:"credits"`
	CreatedAt            string          `json:"createdAt"`
}

type AuditResponseDTO struct {
	ID         string  `json:"id"`
	ActorID    string  `json:"actorId"`
	Amount     int64   `json:"amount"`
	Reason     string  `json:"reason"`
	EventTag   string  `json:"eventTag"`
	PlanID     *string `json:"planId,omitempty"`
	PaymentRef *string `json:"paymentRef,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}
