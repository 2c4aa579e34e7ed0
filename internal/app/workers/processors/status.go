package processors

import (
	"context"

	"merchantpay/payment-broker-go/internal/models"
)

// StatusRecorder persists verified payment status events.
type StatusRecorder interface {
	RecordStatus(ctx context.Context, event *models.StatusEvent) error
}

type StatusProcessor struct {
	store StatusRecorder
}

func NewStatusProcessor(store StatusRecorder) *StatusProcessor {
	return &StatusProcessor{
		store: store,
	}
}

func (p *StatusProcessor) ProcessEvent(ctx context.Context, event any) error {
	status := event.(*models.StatusEvent)
	return p.store.RecordStatus(ctx, status)
}
