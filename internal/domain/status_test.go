package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"processing to sent", OrderStatusProcessing, OrderStatusSentToDispatch, true},
		{"processing to error", OrderStatusProcessing, OrderStatusDispatchError, true},
		{"processing to processing", OrderStatusProcessing, OrderStatusProcessing, false},
		{"sent to error", OrderStatusSentToDispatch, OrderStatusDispatchError, false},
		{"error to sent", OrderStatusDispatchError, OrderStatusSentToDispatch, false},
		{"error to processing", OrderStatusDispatchError, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestPlan_TotalCredits(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want int64
	}{
		{"credits with bonus", Plan{ID: "pro-500", Credits: 500, BonusCredits: 50, Active: true}, 550},
		{"credits without bonus", Plan{ID: "starter-50", Credits: 50, Active: true}, 50},
		{"inactive plan", Plan{ID: "old", Credits: 100, Active: false}, 0},
		{"no credits defined", Plan{ID: "broken", BonusCredits: 10, Active: true}, 0},
		{"negative bonus ignored", Plan{ID: "odd", Credits: 10, BonusCredits: -5, Active: true}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.TotalCredits())
		})
	}
}
