package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/koyif/payments/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `
accounts:
  - number: "123"
    balance: "6.5"
    allowed_scheme: Chaps
    status: Live
  - number: "13451"
    balance: "-1"
    allowed_scheme: FasterPayments
    status: InboundPaymentsOnly
`)

	accounts, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "123", accounts[0].Number)
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("6.5")))
	assert.Equal(t, domain.SchemeChaps, accounts[0].AllowedScheme)
	assert.Equal(t, domain.StatusLive, accounts[0].Status)

	assert.True(t, accounts[1].Balance.Equal(decimal.NewFromInt(-1)))
	assert.Equal(t, domain.StatusInboundPaymentsOnly, accounts[1].Status)
}

func TestLoadSeed_EmptyPath(t *testing.T) {
	accounts, err := LoadSeed("")
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestLoadSeed_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			"UnknownScheme",
			"accounts:\n  - {number: \"1\", balance: \"1\", allowed_scheme: Swift, status: Live}\n",
			domain.ErrUnknownScheme,
		},
		{
			"UnknownStatus",
			"accounts:\n  - {number: \"1\", balance: \"1\", allowed_scheme: Bacs, status: Closed}\n",
			domain.ErrUnknownStatus,
		},
		{
			"BadBalance",
			"accounts:\n  - {number: \"1\", balance: \"abc\", allowed_scheme: Bacs, status: Live}\n",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeSeed(t, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
