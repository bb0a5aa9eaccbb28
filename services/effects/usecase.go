package effects

import "context"

// RelayUC applies outbox rows until they are dispatched or dead
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/comparepco/comparepco/services/effects RelayUC
type RelayUC interface {
	// RunOnce processes one batch and returns how many rows were dispatched
	RunOnce(ctx context.Context) (int, error)
	Run(ctx context.Context) error
}
