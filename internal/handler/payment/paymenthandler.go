package paymenthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/koyif/payments/internal/domain"
	"github.com/koyif/payments/pkg/dto"
	"github.com/koyif/payments/pkg/logger"
)

type PaymentService interface {
	MakePayment(request domain.MakePaymentRequest) domain.MakePaymentResult
}

type PaymentHandler struct {
	srv PaymentService
}

func New(srv PaymentService) *PaymentHandler {
	return &PaymentHandler{
		srv: srv,
	}
}

func (h PaymentHandler) MakePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a payment request", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Error("error while closing request body", logger.Error(err))
			return
		}
	}(r.Body)

	scheme, err := domain.ParsePaymentScheme(req.Scheme)
	if err != nil {
		logger.Log.Warn("invalid payment scheme", logger.String("scheme", req.Scheme))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := uuid.New()
	result := h.srv.MakePayment(domain.MakePaymentRequest{
		CreditorAccountNumber: req.CreditorAccountNumber,
		DebtorAccountNumber:   req.DebtorAccountNumber,
		Amount:                req.Amount,
		PaymentDate:           req.PaymentDate,
		Scheme:                scheme,
	})

	logger.Log.Info(
		"payment processed",
		logger.Stringer("payment_id", id),
		logger.String("operator", r.Header.Get("Operator-ID")),
		logger.Bool("success", result.Success),
	)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(dto.PaymentResult{ID: id, Success: result.Success})
	if err != nil {
		logger.Log.Error("error while encoding payment result to JSON", logger.Stringer("payment_id", id), logger.Error(err))
		return
	}
}
