package core

import (
	"context"
	"strings"
)

// Network bundles everything the orchestrator needs for one blockchain:
// address derivation, the paths worth trying, and an optional balance
// lookup.
type Network struct {
	Name             string
	DefaultPath      string
	AlternativePaths []string
	DefaultRPS       float64
	DeriveAddress    func(mnemonic, path string) (string, error)
	CheckBalance     func(ctx context.Context, address string) (BalanceResult, error)
	AddressesEqual   func(derived, target string) bool
}

// BalanceResult reports a network's native balance for one address. Display
// is in whatever unit the network's balance client reports: EVM and Solana
// report their raw smallest unit (wei, lamports); Tron, Dogecoin, and Pi
// convert to their named major unit (TRX, DOGE, PI) first.
type BalanceResult struct {
	Display string
	NonZero bool
}

// caseInsensitiveEqual matches EVM-family addresses, which legitimately
// vary in letter case due to EIP-55 checksumming.
func caseInsensitiveEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

// exactEqual matches networks whose canonical address encoding has no case
// ambiguity (base58, strkey).
func exactEqual(a, b string) bool {
	return a == b
}
