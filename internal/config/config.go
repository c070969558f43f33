package config

import (
	"flag"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Addr             string   `env:"RUN_ADDRESS" env-default:"localhost:8080"`
	StoreType        string   `env:"STORE_TYPE" env-default:"default"`
	SeedFile         string   `env:"ACCOUNTS_SEED_FILE"`
	BackupSeedFile   string   `env:"BACKUP_ACCOUNTS_SEED_FILE"`
	PrivateKey       string   `env:"PRIVATE_KEY" env-default:"privatekey"`
	AuthDisabledURLs []string `env:"AUTH_DISABLED_URLS" env-default:"/health" env-separator:","`
}

// Load reads the environment first; command line flags take precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	fs := flag.NewFlagSet("payments", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "HTTP server address")
	fs.StringVar(&cfg.StoreType, "s", cfg.StoreType, "account store type: default or backup")
	fs.StringVar(&cfg.SeedFile, "f", cfg.SeedFile, "accounts seed file")
	fs.StringVar(&cfg.BackupSeedFile, "b", cfg.BackupSeedFile, "backup accounts seed file")

	if err = fs.Parse(args); err != nil {
		return nil, fmt.Errorf("couldn't parse flags: %w", err)
	}

	return cfg, nil
}
