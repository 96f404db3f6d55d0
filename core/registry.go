package core

import (
	"context"
	"fmt"
)

// NetworkConfig carries the per-run settings a Network's balance check
// needs beyond the address itself (an RPC endpoint, mostly).
//
// EVMRPS, TronRPS, and SolanaRPS override those three networks' default
// requests-per-second budget when non-zero; MaxConcurrent overrides their
// default concurrent in-flight request cap when non-zero. Dogecoin and Pi
// have no user-tunable limit: both stay at their conservative hardcoded
// defaults regardless of these fields.
type NetworkConfig struct {
	EVMRPCURL    string
	TronRPCURL   string
	SolanaRPCURL string

	EVMRPS        float64
	TronRPS       float64
	SolanaRPS     float64
	MaxConcurrent int
}

// DefaultNetworkConfig returns the public endpoints the tool defaults to
// when the caller doesn't override them.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		EVMRPCURL:    "https://eth.llamarpc.com",
		TronRPCURL:   "https://api.trongrid.io/jsonrpc",
		SolanaRPCURL: "https://api.mainnet-beta.solana.com",
	}
}

// BuildNetworks constructs the registry of supported networks, wiring each
// one's address derivation and balance lookup with a dedicated rate
// limiter sized from its default requests-per-second (or from cfg's
// override, for the three networks that accept one). For EVM, Tron and
// Solana the concurrency cap is half the effective rps (at least 1) unless
// cfg.MaxConcurrent is set.
func BuildNetworks(cfg NetworkConfig) map[string]*Network {
	networks := make(map[string]*Network)

	evmRPS := overrideOrDefault(cfg.EVMRPS, 50)
	evmConcurrent := overrideOrDefaultInt(cfg.MaxConcurrent, int(evmRPS/2))
	evmLimiter := NewRateLimiter(evmRPS, evmConcurrent)
	networks["evm"] = &Network{
		Name:             "evm",
		DefaultPath:      EVMDefaultPath,
		AlternativePaths: EVMAlternativePaths,
		DefaultRPS:       evmRPS,
		DeriveAddress:    DeriveEVMAddress,
		AddressesEqual:   caseInsensitiveEqual,
		CheckBalance: func(ctx context.Context, address string) (BalanceResult, error) {
			return CheckEVMBalance(ctx, evmLimiter, cfg.EVMRPCURL, address)
		},
	}

	tronRPS := overrideOrDefault(cfg.TronRPS, 20)
	tronConcurrent := overrideOrDefaultInt(cfg.MaxConcurrent, int(tronRPS/2))
	tronLimiter := NewRateLimiter(tronRPS, tronConcurrent)
	networks["tron"] = &Network{
		Name:             "tron",
		DefaultPath:      TronDefaultPath,
		AlternativePaths: TronAlternativePaths,
		DefaultRPS:       tronRPS,
		DeriveAddress:    DeriveTronAddress,
		AddressesEqual:   exactEqual,
		CheckBalance: func(ctx context.Context, address string) (BalanceResult, error) {
			return CheckTronBalance(ctx, tronLimiter, cfg.TronRPCURL, address)
		},
	}

	solanaRPS := overrideOrDefault(cfg.SolanaRPS, 50)
	solanaConcurrent := overrideOrDefaultInt(cfg.MaxConcurrent, int(solanaRPS/2))
	solanaLimiter := NewRateLimiter(solanaRPS, solanaConcurrent)
	networks["solana"] = &Network{
		Name:             "solana",
		DefaultPath:      SolanaDefaultPath,
		AlternativePaths: SolanaAlternativePaths,
		DefaultRPS:       solanaRPS,
		DeriveAddress:    DeriveSolanaAddress,
		AddressesEqual:   exactEqual,
		CheckBalance: func(ctx context.Context, address string) (BalanceResult, error) {
			return CheckSolanaBalance(ctx, solanaLimiter, cfg.SolanaRPCURL, address)
		},
	}

	dogeLimiter := NewRateLimiter(3, 2)
	networks["doge"] = &Network{
		Name:             "doge",
		DefaultPath:      DogeDefaultPath,
		AlternativePaths: DogeAlternativePaths,
		DefaultRPS:       3,
		DeriveAddress:    DeriveDogeAddress,
		AddressesEqual:   exactEqual,
		CheckBalance: func(ctx context.Context, address string) (BalanceResult, error) {
			return CheckDogeBalance(ctx, dogeLimiter, address)
		},
	}

	piLimiter := NewRateLimiter(20, 10)
	networks["pi"] = &Network{
		Name:             "pi",
		DefaultPath:      PiDefaultPath,
		AlternativePaths: PiAlternativePaths,
		DefaultRPS:       20,
		DeriveAddress:    DerivePiAddress,
		AddressesEqual:   exactEqual,
		CheckBalance: func(ctx context.Context, address string) (BalanceResult, error) {
			return CheckPiBalance(ctx, piLimiter, address)
		},
	}

	return networks
}

// overrideOrDefault returns override when a caller has set one (> 0),
// otherwise def.
func overrideOrDefault(override, def float64) float64 {
	if override > 0 {
		return override
	}
	return def
}

func overrideOrDefaultInt(override, def int) int {
	if override > 0 {
		return override
	}
	return def
}

// LookupNetwork resolves a network by name, reporting ErrUnknownNetwork for
// anything unrecognized.
func LookupNetwork(networks map[string]*Network, name string) (*Network, error) {
	n, ok := networks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return n, nil
}
