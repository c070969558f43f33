package service

import (
	"errors"
	"sync"

	"github.com/koyif/payments/internal/domain"
	"github.com/koyif/payments/pkg/logger"
)

type accountRepository interface {
	Account(number string) (*domain.Account, error)
	UpdateAccount(account domain.Account) error
}

type accountValidator interface {
	IsValidAccountState(account *domain.Account, request domain.MakePaymentRequest) bool
}

type PaymentService struct {
	repo      accountRepository
	validator accountValidator
	mu        *sync.Mutex
}

func NewPaymentService(repo accountRepository, validator accountValidator) *PaymentService {
	return &PaymentService{
		repo:      repo,
		validator: validator,
		mu:        &sync.Mutex{},
	}
}

// MakePayment debits the debtor account when the validator approves the
// request. Every failure, including a missing account, is reported as an
// unsuccessful result.
func (s *PaymentService) MakePayment(request domain.MakePaymentRequest) domain.MakePaymentResult {
	var result domain.MakePaymentResult

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.repo.Account(request.DebtorAccountNumber)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			logger.Log.Error("error while fetching debtor account", logger.String("debtor", request.DebtorAccountNumber), logger.Error(err))
		}
		account = nil
	}

	if !s.validator.IsValidAccountState(account, request) {
		logger.Log.Info(
			"payment denied",
			logger.String("debtor", request.DebtorAccountNumber),
			logger.String("scheme", string(request.Scheme)),
			logger.Stringer("amount", request.Amount),
		)
		return result
	}

	account.Balance = account.Balance.Sub(request.Amount)

	if err = s.repo.UpdateAccount(*account); err != nil {
		logger.Log.Error("error while updating debtor account", logger.String("debtor", account.Number), logger.Error(err))
		return result
	}

	logger.Log.Info(
		"payment made",
		logger.String("debtor", account.Number),
		logger.String("scheme", string(request.Scheme)),
		logger.Stringer("amount", request.Amount),
		logger.Stringer("balance", account.Balance),
	)
	result.Success = true

	return result
}
