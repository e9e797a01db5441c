package domain

import "time"

// Location is a human-readable address with coordinates.
type Location struct {
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type Identity struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Role         string    `db:"role"`
	Admin        bool      `db:"admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Account struct {
	ID             string    `db:"id"`
	Email          string    `db:"email"`
	OwnerName      string    `db:"owner_name"`
	BusinessName   string    `db:"business_name"`
	ContactPhone   string    `db:"contact_phone"`
	PickupLocation Location  `db:"-"`
	Credits        int64     `db:"credits"`
	CreatedAt      time.Time `db:"created_at"`
}

type Order struct {
	ID              string      `db:"id"`
	AccountID       string      `db:"account_id"`
	CustomerName    string      `db:"customer_name"`
	CustomerPhone   string      `db:"customer_phone"`
	DeliveryAddress Location    `db:"-"`
	Notes           *string     `db:"notes"`
	AmountToCollect *float64    `db:"amount_to_collect"`
	Status          OrderStatus `db:"status"`
	DispatchID      *string     `db:"dispatch_id"`
	CreatedAt       time.Time   `db:"created_at"`
}

// CreditAudit documents a balance increase that did not come from order creation.
type CreditAudit struct {
	ID         string    `db:"id"`
	AccountID  string    `db:"account_id"`
	ActorID    string    `db:"actor_id"`
	Amount     int64     `db:"amount"`
	Reason     string    `db:"reason"`
	EventTag   string    `db:"event_tag"`
	PlanID     *string   `db:"plan_id"`
	PaymentRef *string   `db:"payment_ref"`
	CreatedAt  time.Time `db:"created_at"`
}

type Plan struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Credits      int64  `db:"credits"`
	BonusCredits int64  `db:"bonus_credits"`
	Active       bool   `db:"active"`
}

// TotalCredits is the grant for one purchase of the plan.
func (p *Plan) TotalCredits() int64 {
	if !p.Active || p.Credits <= 0 {
		return 0
	}
	total := p.Credits
	if p.BonusCredits > 0 {
		total += p.BonusCredits
	}
	return total
}

// ProcessedEvent marks a payment provider event as applied.
type ProcessedEvent struct {
	EventID        string    `db:"event_id"`
	EventType      string    `db:"event_type"`
	AccountID      string    `db:"account_id"`
	CreditsGranted int64     `db:"credits_granted"`
	ProcessedAt    time.Time `db:"processed_at"`
}

// Caller is the verified identity behind a request.
type Caller struct {
	ID    string
	Role  string
	Admin bool
}

func (c Caller) Authenticated() bool {
	return c.ID != ""
}
