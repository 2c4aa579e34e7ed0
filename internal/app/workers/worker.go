package workers

import (
	"context"
	"log"

	"merchantpay/payment-broker-go/internal/app/workers/processors"
)

type worker struct {
	id              int
	eventsCh        chan any
	eventsProcessor processors.Processor
}

func newWorker(id int, eventsCh chan any, eventsProcessor processors.Processor) *worker {
	return &worker{
		id:              id,
		eventsCh:        eventsCh,
		eventsProcessor: eventsProcessor,
	}
}

// start drains the event channel until it closes or the context ends.
// Processing is best-effort: failures are logged and the event dropped.
func (w *worker) start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.eventsCh:
			if !ok {
				return
			}

			if err := w.eventsProcessor.ProcessEvent(ctx, event); err != nil {
				log.Printf("Worker %d: failed to process event: %v", w.id, err)
			}
		}
	}
}
