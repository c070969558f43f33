package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentScheme string

const (
	SchemeBacs           PaymentScheme = "Bacs"
	SchemeFasterPayments PaymentScheme = "FasterPayments"
	SchemeChaps          PaymentScheme = "Chaps"
)

func ParsePaymentScheme(s string) (PaymentScheme, error) {
	switch scheme := PaymentScheme(s); scheme {
	case SchemeBacs, SchemeFasterPayments, SchemeChaps:
		return scheme, nil
	}

	return "", ErrUnknownScheme
}

type AccountStatus string

const (
	StatusLive                AccountStatus = "Live"
	StatusDisabled            AccountStatus = "Disabled"
	StatusInboundPaymentsOnly AccountStatus = "InboundPaymentsOnly"
)

func ParseAccountStatus(s string) (AccountStatus, error) {
	switch status := AccountStatus(s); status {
	case StatusLive, StatusDisabled, StatusInboundPaymentsOnly:
		return status, nil
	}

	return "", ErrUnknownStatus
}

// Account allows outgoing payments over exactly one scheme.
type Account struct {
	Number        string
	Balance       decimal.Decimal
	AllowedScheme PaymentScheme
	Status        AccountStatus
}

type MakePaymentRequest struct {
	CreditorAccountNumber string
	DebtorAccountNumber   string
	Amount                decimal.Decimal
	PaymentDate           time.Time
	Scheme                PaymentScheme
}

type MakePaymentResult struct {
	Success bool
}
