package dto

import "github.com/shopspring/decimal"

/**
{
  "number": "123",
  "balance": "6.5",
  "allowed_scheme": "Chaps",
  "status": "Live"
}
*/

type Account struct {
	Number        string          `json:"number"`
	Balance       decimal.Decimal `json:"balance"`
	AllowedScheme string          `json:"allowed_scheme"`
	Status        string          `json:"status"`
}
