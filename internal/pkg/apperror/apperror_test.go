package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: Validation("start_date is required"), want: KindValidation},
		{name: "not found", err: NotFound("booking %s not found", "b-1"), want: KindNotFound},
		{name: "authorization", err: Authorization("partner does not own booking"), want: KindAuthorization},
		{name: "conflict", err: Conflict("booking is %s", "cancelled"), want: KindConflict},
		{name: "payment", err: PaymentFailure(errors.New("rail down"), "refund failed"), want: KindPaymentFailure},
		{name: "wrapped conflict", err: fmt.Errorf("respond: %w", Conflict("stale")), want: KindConflict},
		{name: "plain error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
			assert.True(t, Is(tt.err, tt.want))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")

	err := Internal(cause, "failed to load booking")
	assert.Equal(t, "failed to load booking: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal error", Message(err))

	assert.Equal(t, "booking is cancelled", Message(Conflict("booking is %s", "cancelled")))
	assert.Equal(t, "internal error", Message(cause))
	assert.False(t, Is(nil, KindConflict))
}
