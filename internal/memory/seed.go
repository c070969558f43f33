package memory

import (
	"fmt"
	"os"

	"github.com/koyif/payments/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

/**
accounts:
  - number: "123"
    balance: "6.5"
    allowed_scheme: Chaps
    status: Live
*/

type seedFile struct {
	Accounts []seedAccount `yaml:"accounts"`
}

type seedAccount struct {
	Number        string `yaml:"number"`
	Balance       string `yaml:"balance"`
	AllowedScheme string `yaml:"allowed_scheme"`
	Status        string `yaml:"status"`
}

// LoadSeed reads accounts from a YAML file. An empty path yields no accounts.
func LoadSeed(path string) ([]domain.Account, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var f seedFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing seed file: %w", err)
	}

	accounts := make([]domain.Account, 0, len(f.Accounts))
	for _, a := range f.Accounts {
		account, err := a.toDomain()
		if err != nil {
			return nil, fmt.Errorf("error in seed account %q: %w", a.Number, err)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (a seedAccount) toDomain() (domain.Account, error) {
	balance, err := decimal.NewFromString(a.Balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("invalid balance: %w", err)
	}

	scheme, err := domain.ParsePaymentScheme(a.AllowedScheme)
	if err != nil {
		return domain.Account{}, err
	}

	status, err := domain.ParseAccountStatus(a.Status)
	if err != nil {
		return domain.Account{}, err
	}

	return domain.Account{
		Number:        a.Number,
		Balance:       balance,
		AllowedScheme: scheme,
		Status:        status,
	}, nil
}
