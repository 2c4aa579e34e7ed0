package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"merchantpay/payment-broker-go/internal/app/callback"
	"merchantpay/payment-broker-go/internal/app/payment"
	"merchantpay/payment-broker-go/internal/app/server"
	"merchantpay/payment-broker-go/internal/app/storage"
	"merchantpay/payment-broker-go/internal/app/workers"
	"merchantpay/payment-broker-go/internal/app/workers/processors"
	"merchantpay/payment-broker-go/internal/config"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	ctx := context.Background()

	cacheOpts := redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Cache.Host, cfg.Cache.Port),
		Password: cfg.Cache.Password,
		DB:       0,
	}

	rdb := redis.NewClient(&cacheOpts)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		panic(err)
	}

	// Worker queue for verified callback statuses
	statusEventsCh := make(chan any, cfg.Workers.StatusBufferSize)

	// Services
	builder := payment.NewBuilder(cfg.Merchant.ID, cfg.Merchant.Secret)
	client := payment.NewClient(cfg.Gateway.URL, time.Duration(cfg.Gateway.TimeoutSeconds)*time.Second)
	paymentService := payment.NewService(builder, client)
	verifier := callback.NewVerifier(cfg.Merchant.Secret)
	storageService := storage.NewStorageService(rdb)

	// Worker pool persisting verified statuses off the request path
	statusProcessor := processors.NewStatusProcessor(storageService)
	statusOrchestrator := workers.NewOrchestrator(cfg.Workers.StatusCount, statusEventsCh, statusProcessor)
	statusOrchestrator.StartWorkers(ctx)

	srv := server.NewServer(cfg, paymentService, verifier, storageService, statusEventsCh)
	if err := srv.Run(); err != nil {
		panic(err)
	}

	close(statusEventsCh)
}
