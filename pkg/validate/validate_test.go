package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Description string   `json:"description" validate:"required"`
	Lat         *float64 `json:"lat" validate:"required"`
}

type payload struct {
	Name   string   `json:"name" validate:"required,min=2"`
	Phone  string   `json:"phone" validate:"phone"`
	Amount *float64 `json:"amount" validate:"omitempty,gte=0"`
	Point  point    `json:"point"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "Ten digits", phone: "5551234567", want: true},
		{name: "Too short", phone: "555123", want: false},
		{name: "Too long", phone: "55512345678", want: false},
		{name: "Letters", phone: "555123456a", want: false},
		{name: "Formatted", phone: "(555)123-45", want: false},
		{name: "Empty", phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.phone))
		})
	}
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      payload
		wantFields map[string]string
	}{
		{
			name: "Valid payload",
			input: payload{
				Name: "Ana", Phone: "5551234567", Amount: ptr(10.0),
				Point: point{Description: "Av. Reforma 1", Lat: ptr(0.0)},
			},
		},
		{
			name: "Optional amount omitted",
			input: payload{
				Name: "Ana", Phone: "5551234567",
				Point: point{Description: "Av. Reforma 1", Lat: ptr(19.4)},
			},
		},
		{
			name:  "Every field rejected",
			input: payload{Name: "A", Phone: "123", Amount: ptr(-1.0)},
			wantFields: map[string]string{
				"name":              "min",
				"phone":             "phone",
				"amount":            "gte",
				"point.description": "required",
				"point.lat":         "required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Fields: map[string]string{"phone": "phone", "name": "required"}}
	assert.Equal(t, "validation failed: name: required, phone: phone", err.Error())
	assert.Equal(t, map[string]string{"amount": "gt"}, NewError("amount", "gt").Fields)
}
