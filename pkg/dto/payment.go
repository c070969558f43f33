package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

/**
{
  "debtor_account_number": "123",
  "creditor_account_number": "456",
  "amount": 5.5,
  "scheme": "Chaps",
  "payment_date": "2024-05-01T10:00:00Z"
}
*/

type PaymentRequest struct {
	DebtorAccountNumber   string          `json:"debtor_account_number"`
	CreditorAccountNumber string          `json:"creditor_account_number"`
	Amount                decimal.Decimal `json:"amount"`
	Scheme                string          `json:"scheme"`
	PaymentDate           time.Time       `json:"payment_date"`
}

/**
{
  "id": "0b6f2d7e-5c1a-4f0e-9d59-3f8b1c1a2e44",
  "success": true
}
*/

type PaymentResult struct {
	ID      uuid.UUID `json:"id"`
	Success bool      `json:"success"`
}
