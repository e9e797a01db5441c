package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, http.StatusCreated, map[string]string{"accountId": "acc-1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"accountId":"acc-1"}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithError(rr, http.StatusPaymentRequired, "Insufficient credits")

	assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Insufficient credits", resp.Message)
	assert.Nil(t, resp.Fields)
}

func TestRespondWithFields(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithFields(rr, http.StatusBadRequest, "Validation failed", map[string]string{"customerPhone": "phone"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Validation failed","fields":{"customerPhone":"phone"}}`, rr.Body.String())
}

func TestRespondWithValidation(t *testing.T) {
	t.Run("Wrapped validation error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := fmt.Errorf("create order: %w", validate.NewError("amount", "gt"))

		assert.True(t, RespondWithValidation(rr, err))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Validation failed","fields":{"amount":"gt"}}`, rr.Body.String())
	})

	t.Run("Other errors are left to the caller", func(t *testing.T) {
		rr := httptest.NewRecorder()

		assert.False(t, RespondWithValidation(rr, errors.New("boom")))
		assert.Zero(t, rr.Body.Len())
	})
}
