package service

import "github.com/koyif/payments/internal/domain"

type accountReader interface {
	Account(number string) (*domain.Account, error)
}

type AccountService struct {
	repo accountReader
}

func NewAccountService(repo accountReader) *AccountService {
	return &AccountService{
		repo: repo,
	}
}

func (s AccountService) Account(number string) (*domain.Account, error) {
	return s.repo.Account(number)
}
