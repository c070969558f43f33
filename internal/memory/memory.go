package memory

import (
	"fmt"
	"sync"

	"github.com/koyif/payments/internal/domain"
	"github.com/koyif/payments/pkg/logger"
)

type Kind string

const (
	KindDefault Kind = "default"
	KindBackup  Kind = "backup"
)

func ParseKind(s string) (Kind, error) {
	switch kind := Kind(s); kind {
	case KindDefault, KindBackup:
		return kind, nil
	case "":
		return KindDefault, nil
	}

	return "", fmt.Errorf("unknown store type %q", s)
}

// Memory keeps accounts in a slice. Lookups scan it in order.
type Memory struct {
	kind     Kind
	mu       sync.RWMutex
	accounts []domain.Account
}

func New(kind Kind) *Memory {
	return &Memory{kind: kind}
}

func (m *Memory) Kind() Kind {
	return m.kind
}

func (m *Memory) AddAccounts(accounts ...domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range accounts {
		if m.indexOf(account.Number) >= 0 {
			logger.Log.Warn("account already exists", logger.String("number", account.Number))
			return fmt.Errorf("error adding account %q: %w", account.Number, domain.ErrAccountExists)
		}
		m.accounts = append(m.accounts, account)
	}

	return nil
}

// Account returns a copy of the stored account; changes to it are not
// visible until UpdateAccount is called.
func (m *Memory) Account(number string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(number)
	if i < 0 {
		return nil, domain.ErrAccountNotFound
	}

	account := m.accounts[i]

	return &account, nil
}

func (m *Memory) UpdateAccount(account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(account.Number)
	if i < 0 {
		return fmt.Errorf("error updating account %q: %w", account.Number, domain.ErrAccountNotFound)
	}

	m.accounts[i] = account

	return nil
}

func (m *Memory) indexOf(number string) int {
	for i := range m.accounts {
		if m.accounts[i].Number == number {
			return i
		}
	}

	return -1
}
