package dto

type PlanResponseDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Credits      int64  `json:"credits"`
	BonusCredits int64  `json:"bonusCredits"`
	TotalCredits int64  `json:"totalCredits"`
}

type CheckoutRequestDTO struct {
	PlanID     string `json:"planId"     validate:"required"`
	SuccessURL string `json:"successUrl" validate:"required,url"`
	CancelURL  string `json:"cancelUrl"  validate:"required,url"`
}

type CheckoutResponseDTO struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type WebhookResponseDTO struct {
	Received bool `json:"received"`
}
