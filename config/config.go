// Package config loads the immutable runtime configuration from a config
// file, PEGGATE_* environment variables and command-line flags, in ascending
// precedence. The result is injected at startup; nothing here is mutated
// afterwards.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/satflow/peggate/types"
	"github.com/satflow/peggate/utils"
)

// Config holds everything the server needs at startup.
type Config struct {
	ListenAddr string `validate:"required"`
	LogLevel   string

	Network        types.Network `validate:"required"`
	LedgerAPIURL   string        `validate:"required,url"`
	PriceOracleURL string        `validate:"required,url"`
	MarketDataURL  string        `validate:"required,url"`

	UpstreamTimeout time.Duration
	VerifyTimeout   time.Duration
	MetricsEnabled  bool

	Payment  types.PaymentConfig
	Pricing  types.PricingTable
	Registry []types.ProtocolRecord
}

var validate = validator.New()

// Load merges config file, environment variables and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PEGGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen", ":8080")
	v.SetDefault("log-level", "info")
	v.SetDefault("network", string(types.NetworkStacksMainnet))
	v.SetDefault("ledger-api", "https://api.mainnet.hiro.so")
	v.SetDefault("price-api", "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd")
	v.SetDefault("market-api", "https://api.coingecko.com/api/v3/simple/price?ids=sbtc&vs_currencies=usd&include_24hr_vol=true&include_24hr_change=true")
	v.SetDefault("upstream-timeout", 10*time.Second)
	v.SetDefault("verify-timeout", 15*time.Second)
	v.SetDefault("metrics-enabled", true)
	v.SetDefault("pay-to", "SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE")
	v.SetDefault("payment-contract", "SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE.peggate-payments")
	v.SetDefault("payment-function", "pay")
	v.SetDefault("sbtc-contract", "SM3VDXK3WZZSA84XXFKAFAF15NNZX32CTSG82JFQ4.sbtc-token")
	v.SetDefault("sbtc-asset-name", "sbtc-token")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("peggate")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	payment, err := paymentConfig(v)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ListenAddr:      v.GetString("listen"),
		LogLevel:        v.GetString("log-level"),
		Network:         types.Network(v.GetString("network")),
		LedgerAPIURL:    v.GetString("ledger-api"),
		PriceOracleURL:  v.GetString("price-api"),
		MarketDataURL:   v.GetString("market-api"),
		UpstreamTimeout: v.GetDuration("upstream-timeout"),
		VerifyTimeout:   v.GetDuration("verify-timeout"),
		MetricsEnabled:  v.GetBool("metrics-enabled"),
		Payment:         payment,
		Pricing:         types.DefaultPricing(),
		Registry:        types.DefaultProtocolRegistry(),
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Payment.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func paymentConfig(v *viper.Viper) (types.PaymentConfig, error) {
	contract, err := splitContractID(v.GetString("payment-contract"))
	if err != nil {
		return types.PaymentConfig{}, fmt.Errorf("payment-contract: %w", err)
	}

	asset, err := splitContractID(v.GetString("sbtc-contract"))
	if err != nil {
		return types.PaymentConfig{}, fmt.Errorf("sbtc-contract: %w", err)
	}

	payTo := v.GetString("pay-to")
	if err := utils.ValidatePrincipal(payTo); err != nil {
		return types.PaymentConfig{}, fmt.Errorf("pay-to: %w", err)
	}

	return types.PaymentConfig{
		Network:         types.Network(v.GetString("network")),
		PayTo:           payTo,
		PaymentContract: contract,
		PaymentFunction: v.GetString("payment-function"),
		PeggedAsset: types.AssetPointer{
			ContractAddress: asset.Address,
			ContractName:    asset.Name,
			AssetName:       v.GetString("sbtc-asset-name"),
			Decimals:        8,
		},
	}, nil
}

func splitContractID(id string) (types.ContractID, error) {
	if err := utils.ValidateContractID(id); err != nil {
		return types.ContractID{}, err
	}
	parts := strings.SplitN(id, ".", 2)
	return types.ContractID{Address: parts[0], Name: parts[1]}, nil
}
