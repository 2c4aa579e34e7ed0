package storage

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"merchantpay/payment-broker-go/internal/models"
)

const statusKey = "payment_statuses"

// StorageService persists the terminal status of each order. Writes are
// first-wins: once a terminal status is recorded for an order, later
// callbacks carrying a different status are acknowledged but not applied.
type StorageService struct {
	cache *redis.Client
}

func NewStorageService(cache *redis.Client) *StorageService {
	return &StorageService{
		cache: cache,
	}
}

// RecordStatus stores a verified status event keyed by order id. Recording
// a second status for the same order is a no-op, not an error.
func (s *StorageService) RecordStatus(ctx context.Context, event *models.StatusEvent) error {
	payload, err := sonic.ConfigFastest.Marshal(event)
	if err != nil {
		return err
	}

	stored, err := s.cache.HSetNX(ctx, statusKey, event.OrderID, payload).Result()
	if err != nil {
		return err
	}

	if !stored {
		log.Printf("Order %s already has a recorded status, ignoring %s callback", event.OrderID, event.Status)
	}

	return nil
}

// GetStatus returns the recorded status event for an order, or nil when no
// callback has been recorded yet.
func (s *StorageService) GetStatus(ctx context.Context, orderID string) (*models.StatusEvent, error) {
	payload, err := s.cache.HGet(ctx, statusKey, orderID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var event models.StatusEvent
	if err := sonic.ConfigFastest.Unmarshal(payload, &event); err != nil {
		return nil, err
	}

	return &event, nil
}
