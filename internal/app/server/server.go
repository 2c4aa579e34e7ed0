package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"merchantpay/payment-broker-go/internal/app/callback"
	"merchantpay/payment-broker-go/internal/app/payment"
	"merchantpay/payment-broker-go/internal/app/server/handlers"
	"merchantpay/payment-broker-go/internal/app/storage"
	"merchantpay/payment-broker-go/internal/config"
)

type Server struct {
	cfg      *config.Config
	router   *chi.Mux
	handlers *handlers.Handlers
}

func NewServer(cfg *config.Config, paymentService *payment.Service, verifier *callback.Verifier, storageService *storage.StorageService, statusEventsCh chan any) *Server {
	srv := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		handlers: handlers.NewHandlers(cfg, paymentService, verifier, storageService, statusEventsCh),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.router.Use(requestID)
	s.router.Post("/api/create-payment", s.handlers.CreatePayment)
	s.router.Post("/api/payment-callback", s.handlers.PaymentCallback)
	s.router.Get("/api/payment-status/{orderID}", s.handlers.PaymentStatus)
}

func (s *Server) Run() error {
	return http.ListenAndServe(fmt.Sprintf(":%s", s.cfg.Server.Port), s.router)
}
