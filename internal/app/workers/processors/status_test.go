package processors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantpay/payment-broker-go/internal/models"
)

type fakeRecorder struct {
	events []*models.StatusEvent
}

func (f *fakeRecorder) RecordStatus(ctx context.Context, event *models.StatusEvent) error {
	f.events = append(f.events, event)
	return nil
}

func TestStatusProcessorRecordsEvent(t *testing.T) {
	recorder := &fakeRecorder{}
	processor := NewStatusProcessor(recorder)

	event := &models.StatusEvent{
		OrderID:   "ORD1",
		Status:    models.StatusSucceeded,
		PaymentID: "PAY1",
	}

	err := processor.ProcessEvent(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, event, recorder.events[0])
}
