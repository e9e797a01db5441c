package dto

type AddCreditsRequestDTO struct {
	AccountID string `json:"accountId" validate:"required,uuid"`
	Amount    int64  `json:"amount"    validate:"gt=0"`
	Reason    string `json:"reason"    validate:"required"`
}

type AddCreditsResponseDTO struct {
	AccountID string `json:"accountId"`
	Credits   int64  `json:"credits"`
}

type SetAdminRoleRequestDTO struct {
	Email string `json:"email"`
}

type SetAdminRoleResponseDTO struct {
	Message string `json:"message"`
}

type AccountSummaryDTO struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	OwnerName    string `json:"ownerName"`
	Email        string `json:"email"`
	Credits      int64  `json:"credits"`
}
