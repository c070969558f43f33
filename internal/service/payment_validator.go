package service

import "github.com/koyif/payments/internal/domain"

type PaymentValidator struct{}

func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{}
}

// IsValidAccountState reports whether account may pay request.
// The account must allow exactly the requested scheme. FasterPayments then
// also needs enough balance and Chaps needs a Live account. Bacs has no
// further checks.
func (PaymentValidator) IsValidAccountState(account *domain.Account, request domain.MakePaymentRequest) bool {
	if account == nil || request.Scheme != account.AllowedScheme {
		return false
	}

	switch request.Scheme {
	case domain.SchemeFasterPayments:
		if account.Balance.LessThan(request.Amount) {
			return false
		}
	case domain.SchemeChaps:
		if account.Status != domain.StatusLive {
			return false
		}
	}

	return true
}
