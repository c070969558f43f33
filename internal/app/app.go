package app

import (
	"fmt"

	"github.com/koyif/payments/internal/config"
	"github.com/koyif/payments/internal/memory"
	"github.com/koyif/payments/pkg/logger"
)

type App struct {
	Config *config.Config
	Store  *memory.Memory
}

func New(cfg *config.Config) (*App, error) {
	store, err := initStore(cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Store:  store,
	}, nil
}

func initStore(cfg *config.Config) (*memory.Memory, error) {
	kind, err := memory.ParseKind(cfg.StoreType)
	if err != nil {
		return nil, fmt.Errorf("error selecting account store: %w", err)
	}

	seedFile := cfg.SeedFile
	if kind == memory.KindBackup {
		seedFile = cfg.BackupSeedFile
	}

	accounts, err := memory.LoadSeed(seedFile)
	if err != nil {
		return nil, fmt.Errorf("error loading accounts: %w", err)
	}

	store := memory.New(kind)
	if err = store.AddAccounts(accounts...); err != nil {
		return nil, fmt.Errorf("error seeding account store: %w", err)
	}

	logger.Log.Info("account store ready", logger.String("kind", string(kind)), logger.Int64("accounts", int64(len(accounts))))

	return store, nil
}
