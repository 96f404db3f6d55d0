package config

import (
	"strings"

	"github.com/spf13/viper"

	"seedrecover/pkg/utils"
)

// NetworkEndpoints holds the outbound RPC/REST endpoints balance checking
// talks to, one field per supported chain.
type NetworkEndpoints struct {
	EVMRPCURL    string `mapstructure:"evm_rpc_url" json:"evm_rpc_url"`
	TronRPCURL   string `mapstructure:"tron_rpc_url" json:"tron_rpc_url"`
	SolanaRPCURL string `mapstructure:"solana_rpc_url" json:"solana_rpc_url"`
}

// RateLimits holds the default requests-per-second budget per network,
// overridable from config so a user with a paid RPC plan can raise them.
// Only EVMRPS, TronRPS and SolanaRPS are passed on to the engine; DogeRPS
// and PiRPS are read but not applied.
type RateLimits struct {
	EVMRPS    float64 `mapstructure:"evm_rps" json:"evm_rps"`
	TronRPS   float64 `mapstructure:"tron_rps" json:"tron_rps"`
	SolanaRPS float64 `mapstructure:"solana_rps" json:"solana_rps"`
	DogeRPS   float64 `mapstructure:"doge_rps" json:"doge_rps"`
	PiRPS     float64 `mapstructure:"pi_rps" json:"pi_rps"`
}

// Logging holds log level and format settings. The CLI does not apply
// them: it takes its level from the LOG_LEVEL environment variable and
// always uses the text formatter.
type Logging struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"` // "text" or "json"
}

// Config is the process-wide configuration, loaded from a config file
// (if present), environment variables, and finally command-line flags, in
// that order of increasing precedence.
type Config struct {
	Endpoints NetworkEndpoints `mapstructure:"endpoints" json:"endpoints"`
	Limits    RateLimits       `mapstructure:"limits" json:"limits"`
	Logging   Logging          `mapstructure:"logging" json:"logging"`
}

// defaults mirrors the hardcoded fallbacks core.DefaultNetworkConfig and
// core.BuildNetworks use, so a missing config file still produces a fully
// usable Config.
func defaults() Config {
	return Config{
		Endpoints: NetworkEndpoints{
			EVMRPCURL:    "https://eth.llamarpc.com",
			TronRPCURL:   "https://api.trongrid.io/jsonrpc",
			SolanaRPCURL: "https://api.mainnet-beta.solana.com",
		},
		Limits: RateLimits{
			EVMRPS:    50,
			TronRPS:   20,
			SolanaRPS: 50,
			DogeRPS:   3,
			PiRPS:     20,
		},
		Logging: Logging{Level: "info", Format: "text"},
	}
}

// Load reads configuration from (in order) a config file named
// "seedrecover.yaml" on the search path, then SEEDRECOVER_-prefixed
// environment variables, falling back to defaults for anything neither
// source sets.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("seedrecover")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.seedrecover")

	v.SetEnvPrefix("SEEDRECOVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := defaults()
	v.SetDefault("endpoints.evm_rpc_url", d.Endpoints.EVMRPCURL)
	v.SetDefault("endpoints.tron_rpc_url", d.Endpoints.TronRPCURL)
	v.SetDefault("endpoints.solana_rpc_url", d.Endpoints.SolanaRPCURL)
	v.SetDefault("limits.evm_rps", d.Limits.EVMRPS)
	v.SetDefault("limits.tron_rps", d.Limits.TronRPS)
	v.SetDefault("limits.solana_rps", d.Limits.SolanaRPS)
	v.SetDefault("limits.doge_rps", d.Limits.DogeRPS)
	v.SetDefault("limits.pi_rps", d.Limits.PiRPS)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, utils.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, utils.Wrap(err, "unmarshalling config")
	}
	return &cfg, nil
}

// LoadFromEnv builds a Config purely from environment variables and
// defaults, for callers (tests, embedding) that don't want file I/O.
func LoadFromEnv() Config {
	cfg := defaults()
	cfg.Endpoints.EVMRPCURL = utils.EnvOrDefault("SEEDRECOVER_EVM_RPC_URL", cfg.Endpoints.EVMRPCURL)
	cfg.Endpoints.TronRPCURL = utils.EnvOrDefault("SEEDRECOVER_TRON_RPC_URL", cfg.Endpoints.TronRPCURL)
	cfg.Endpoints.SolanaRPCURL = utils.EnvOrDefault("SEEDRECOVER_SOLANA_RPC_URL", cfg.Endpoints.SolanaRPCURL)
	cfg.Logging.Level = utils.EnvOrDefault("LOG_LEVEL", cfg.Logging.Level)
	return cfg
}
