package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/constants"
	"github.com/comparepco/comparepco/internal/pkg/models"
	nrpkg "github.com/comparepco/comparepco/internal/pkg/newrelic"
)

const refundRequestTimeout = 10 * time.Second

// RequestRefund asks the payment rail to return money to the driver and waits for its acknowledgement
func (g *BookingGW) RequestRefund(ctx context.Context, req *models.RefundRequest) error {
	ctx, cancel := context.WithTimeout(ctx, refundRequestTimeout)
	defer cancel()

	return nrpkg.WithMessageSegment(ctx, constants.SubjectRefundRequested, func() error {
		var reply models.RefundReply
		if err := g.natsClient.RequestJSON(ctx, constants.SubjectRefundRequested, req, &reply); err != nil {
			return err
		}
		if !reply.Accepted {
			return fmt.Errorf("refund rejected: %s", reply.Error)
		}
		return nil
	})
}
