package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{Cost: bcrypt.MinCost}

	tests := []struct {
		name        string
		password    string
		expectError error
	}{
		{
			name:     "Valid password",
			password: "secret1",
		},
		{
			name:        "Empty password",
			password:    "",
			expectError: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, tt.password, hashedPassword)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{Cost: bcrypt.MinCost}
	hashed, err := hashService.HashPassword("secret1")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		hashed      string
		password    string
		expectMatch bool
	}{
		{name: "Matching password", hashed: hashed, password: "secret1", expectMatch: true},
		{name: "Wrong password", hashed: hashed, password: "secret2", expectMatch: false},
		{name: "Garbage hash", hashed: "not-a-hash", password: "secret1", expectMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashed, tt.password))
		})
	}
}
