package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrUnknownScheme   = errors.New("unknown payment scheme")
	ErrUnknownStatus   = errors.New("unknown account status")
)
