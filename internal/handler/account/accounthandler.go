package accounthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/koyif/payments/internal/domain"
	"github.com/koyif/payments/pkg/dto"
	"github.com/koyif/payments/pkg/logger"
)

type accountService interface {
	Account(number string) (*domain.Account, error)
}

type AccountHandler struct {
	accountService accountService
}

func New(svc accountService) *AccountHandler {
	return &AccountHandler{
		accountService: svc,
	}
}

func (h AccountHandler) Account(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	account, err := h.accountService.Account(number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			logger.Log.Warn("account not found", logger.String("number", number))
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		logger.Log.Error("error while fetching account", logger.String("number", number), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.Account{
		Number:        account.Number,
		Balance:       account.Balance,
		AllowedScheme: string(account.AllowedScheme),
		Status:        string(account.Status),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding account to JSON", logger.String("number", number), logger.Error(err))
		return
	}
}
