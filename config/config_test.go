package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satflow/peggate/types"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, types.NetworkStacksMainnet, cfg.Network)
	assert.Equal(t, "https://api.mainnet.hiro.so", cfg.LedgerAPIURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 15*time.Second, cfg.VerifyTimeout)
	assert.True(t, cfg.MetricsEnabled)

	assert.Equal(t, "SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE", cfg.Payment.PayTo)
	assert.Equal(t, "peggate-payments", cfg.Payment.PaymentContract.Name)
	assert.Equal(t, "pay", cfg.Payment.PaymentFunction)
	assert.Equal(t, "sbtc-token", cfg.Payment.PeggedAsset.ContractName)
	assert.Equal(t, 8, cfg.Payment.PeggedAsset.Decimals)

	require.Contains(t, cfg.Pricing, "/peg-health")
	assert.Equal(t, uint64(2000), cfg.Pricing["/peg-health"].Standard.Native)
	assert.NotEmpty(t, cfg.Registry)
}

func TestLoadFlagOverrides(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("listen", ":8080", "")
	fs.String("ledger-api", "", "")
	require.NoError(t, fs.Set("listen", ":9090"))
	require.NoError(t, fs.Set("ledger-api", "https://api.testnet.hiro.so"))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "https://api.testnet.hiro.so", cfg.LedgerAPIURL)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peggate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen: \":7070\"\nnetwork: stacks-testnet\npay-to: ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM\n",
	), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, types.NetworkStacksTestnet, cfg.Network)
	assert.Equal(t, "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM", cfg.Payment.PayTo)
	assert.Equal(t, types.NetworkStacksTestnet, cfg.Payment.Network)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadRejectsBadPaymentContract(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("payment-contract", "", "")
	require.NoError(t, fs.Set("payment-contract", "not-a-contract-id"))

	_, err := Load("", fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment-contract")
}

func TestLoadRejectsBadPayTo(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("pay-to", "", "")
	require.NoError(t, fs.Set("pay-to", "nobody"))

	_, err := Load("", fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pay-to")
}
