package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	accounthandler "github.com/koyif/payments/internal/handler/account"
	"github.com/koyif/payments/internal/handler/middleware"
	paymenthandler "github.com/koyif/payments/internal/handler/payment"
	"github.com/koyif/payments/internal/service"
)

func (app App) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.WithAuth(app.Config))

	paymentService := service.NewPaymentService(app.Store, service.NewPaymentValidator())
	paymentHandler := paymenthandler.New(paymentService)

	accountService := service.NewAccountService(app.Store)
	accountHandler := accounthandler.New(accountService)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/payments", paymentHandler.MakePayment)
		r.Get("/accounts/{number}", accountHandler.Account)
	})

	return r
}
