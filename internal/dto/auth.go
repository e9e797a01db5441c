package dto

type RegisterRequestDTO struct {
	Email                string      `json:"email"                validate:"required,email"`
	Password             string      `json:"password"             validate:"required,min=6"`
	OwnerName            string      `json:"ownerName"            validate:"required,min=2"`
	BusinessName         string      `json:"businessName"         validate:"required,min=2"`
	ContactPhone         string      `json:"contactPhone"         validate:"phone"`
	DefaultPickupAddress LocationDTO `json:"defaultPickupAddress"`
}

type RegisterResponseDTO struct {
	AccountID string `json:"accountId"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	AccountID string `json:"accountId"`
	Admin     bool   `json:"admin"`
}
