package usecase

import (
	"math"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/models"
)

const (
	day  = 24 * time.Hour
	week = 7 * day

	// absorbs float noise so an exact multiple never rounds up
	ceilEpsilon = 1e-9
)

func ceil(x float64) int {
	return int(math.Ceil(x - ceilEpsilon))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ceilDays counts started days between from and to, never negative
func ceilDays(from, to time.Time) int {
	d := ceil(float64(to.Sub(from)) / float64(day))
	if d < 0 {
		return 0
	}
	return d
}

// totalWeeks counts started weeks of the rental period
func totalWeeks(start, end time.Time) int {
	w := ceil(float64(end.Sub(start)) / float64(week))
	if w < 0 {
		return 0
	}
	return w
}

func totalAmount(start, end time.Time, weeklyRate, deposit float64) float64 {
	return round2(float64(totalWeeks(start, end))*weeklyRate + deposit)
}

// actualPaid sums the instructions whose money has reached the partner
func actualPaid(instructions []*models.PaymentInstruction) float64 {
	var sum float64
	for _, in := range instructions {
		if in.Type == models.InstructionTypeRefund {
			continue
		}
		if in.CountsAsPaid() {
			sum += in.Amount
		}
	}
	return round2(sum)
}

// refundAmount applies the cancellation policy to what the driver has paid so far
func refundAmount(cancelType string, weeklyRate, paid float64, daysUsed int) float64 {
	switch cancelType {
	case models.CancelTypeFull:
		return round2(paid)
	case models.CancelTypeProrated:
		if weeklyRate <= 0 || paid <= 0 {
			return 0
		}
		dailyRate := weeklyRate / 7
		paidDays := ceil(paid / dailyRate)
		remaining := paidDays - daysUsed
		if remaining <= 0 {
			return 0
		}
		return round2(float64(remaining) * dailyRate)
	default:
		return 0
	}
}

type settlement struct {
	totalDays   int
	totalWeeks  int
	finalAmount float64
	outstanding float64
}

// settle computes what the driver owes for the days actually used
func settle(start, now time.Time, weeklyRate, paid float64) settlement {
	days := ceilDays(start, now)
	weeks := ceil(float64(days) / 7)
	final := round2(float64(weeks) * weeklyRate)
	outstanding := round2(final - paid)
	if outstanding < 0 {
		outstanding = 0
	}
	return settlement{
		totalDays:   days,
		totalWeeks:  weeks,
		finalAmount: final,
		outstanding: outstanding,
	}
}
