package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

type Response struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Message: message})
}

// RespondWithFields reports a rejected payload with the offending fields.
func RespondWithFields(w http.ResponseWriter, status int, message string, fields map[string]string) {
	RespondWithJSON(w, status, Response{Message: message, Fields: fields})
}

// RespondWithValidation writes a 400 with the rejected fields when err is a
// validation failure and reports whether it did.
func RespondWithValidation(w http.ResponseWriter, err error) bool {
	var verr *validate.Error
	if !errors.As(err, &verr) {
		return false
	}
	RespondWithFields(w, http.StatusBadRequest, "Validation failed", verr.Fields)
	return true
}
