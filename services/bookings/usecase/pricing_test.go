package usecase

import (
	"testing"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestTotalAmount(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		rate     float64
		deposit  float64
		expected float64
	}{
		{name: "exact two weeks", end: start.Add(14 * day), rate: 100, deposit: 50, expected: 250},
		{name: "partial week rounds up", end: start.Add(15 * day), rate: 100, deposit: 0, expected: 300},
		{name: "one day is one week", end: start.Add(day), rate: 120.5, deposit: 10, expected: 130.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, totalAmount(start, tt.end, tt.rate, tt.deposit))
		})
	}
}

func TestCeilDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ceilDays(start, start.Add(-48*time.Hour)))
	assert.Equal(t, 0, ceilDays(start, start))
	assert.Equal(t, 1, ceilDays(start, start.Add(time.Minute)))
	assert.Equal(t, 14, ceilDays(start, start.Add(14*day)))
}

func TestActualPaid(t *testing.T) {
	instructions := []*models.PaymentInstruction{
		instruction("a", models.InstructionTypeWeeklyRent, models.InstructionStatusCompleted, 140),
		instruction("b", models.InstructionTypeWeeklyRent, models.InstructionStatusReceived, 140),
		instruction("c", models.InstructionTypeDeposit, models.InstructionStatusDepositReceived, 300),
		instruction("d", models.InstructionTypeWeeklyRent, models.InstructionStatusSent, 140),
		instruction("e", models.InstructionTypeRefund, models.InstructionStatusCompleted, 80),
	}

	assert.Equal(t, 280.0, actualPaid(instructions))
}

func TestRefundAmount(t *testing.T) {
	tests := []struct {
		name       string
		cancelType string
		rate       float64
		paid       float64
		daysUsed   int
		expected   float64
	}{
		{name: "prorated leaves four paid days", cancelType: models.CancelTypeProrated, rate: 140, paid: 280, daysUsed: 10, expected: 80},
		{name: "prorated fully used", cancelType: models.CancelTypeProrated, rate: 140, paid: 140, daysUsed: 9, expected: 0},
		{name: "prorated nothing paid", cancelType: models.CancelTypeProrated, rate: 140, paid: 0, daysUsed: 0, expected: 0},
		{name: "full refunds everything", cancelType: models.CancelTypeFull, rate: 140, paid: 280, daysUsed: 10, expected: 280},
		{name: "none", cancelType: models.CancelTypeNone, rate: 140, paid: 280, daysUsed: 1, expected: 0},
		{name: "prorated rounds to pence", cancelType: models.CancelTypeProrated, rate: 100, paid: 100, daysUsed: 3, expected: 57.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, refundAmount(tt.cancelType, tt.rate, tt.paid, tt.daysUsed))
		})
	}
}

func TestSettle(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("two weeks with partial payment", func(t *testing.T) {
		s := settle(start, start.Add(14*day), 100, 100)
		assert.Equal(t, 14, s.totalDays)
		assert.Equal(t, 2, s.totalWeeks)
		assert.Equal(t, 200.0, s.finalAmount)
		assert.Equal(t, 100.0, s.outstanding)
	})

	t.Run("overpaid never goes negative", func(t *testing.T) {
		s := settle(start, start.Add(3*day), 100, 400)
		assert.Equal(t, 1, s.totalWeeks)
		assert.Equal(t, 0.0, s.outstanding)
	})

	t.Run("finished before start", func(t *testing.T) {
		s := settle(start, start.Add(-day), 100, 0)
		assert.Equal(t, 0, s.totalDays)
		assert.Equal(t, 0.0, s.finalAmount)
	})
}
