package core

import (
	"context"
	"sync/atomic"
)

// RecoveryResult is what an Orchestrator run produces: either a confirmed
// match against the target address, a funded wallet found along the way
// (when balance checking is on), or neither.
type RecoveryResult struct {
	Matched        bool
	FundedNonMatch bool
	Mnemonic       string
	Address        string
	Path           string
	Balance        BalanceResult
}

// Orchestrator drives Scan across every derivation path and position set a
// recovery run should try: the network's default path first, its
// alternative paths in one follow-up pass if nothing turned up and the
// caller asked for it, each pass covering every position set supplied.
type Orchestrator struct {
	Network      *Network
	PositionSets [][]int // each entry overrides RecoveryConfig.MissingPositions for one pass
	Base         RecoveryConfig
	OnProgress   func(attempted uint64)
}

// Run executes the orchestration described above, stopping at the first
// target match. When CheckBalance is set, funded addresses that are not
// the target are reported via onFunded but do not stop the search.
func (o *Orchestrator) Run(ctx context.Context, onFunded func(RecoveryResult)) (RecoveryResult, error) {
	paths := []string{o.Base.Path}
	if o.Base.Path == "" {
		paths = []string{o.Network.DefaultPath}
	}

	result, found, err := o.runPathSet(ctx, paths, onFunded)
	if err != nil || found {
		return result, err
	}

	if o.Base.Path == "" && o.Base.TryAlternatives && len(o.Network.AlternativePaths) > 0 {
		result, found, err = o.runPathSet(ctx, o.Network.AlternativePaths, onFunded)
		if err != nil || found {
			return result, err
		}
	}

	return RecoveryResult{}, ErrNotFound
}

func (o *Orchestrator) runPathSet(ctx context.Context, paths []string, onFunded func(RecoveryResult)) (RecoveryResult, bool, error) {
	var attempted uint64
	var finalResult RecoveryResult
	var matched bool

	for _, path := range paths {
		for _, positions := range o.PositionSets {
			cfg := o.Base
			cfg.MissingPositions = positions

			onMnemonic := func(cand CandidateMnemonic) bool {
				addr, err := o.Network.DeriveAddress(cand.String(), path)
				if err != nil {
					return false
				}

				if o.Base.TargetAddress != "" && o.Network.AddressesEqual(addr, o.Base.TargetAddress) {
					finalResult = RecoveryResult{
						Matched:  true,
						Mnemonic: cand.String(),
						Address:  addr,
						Path:     path,
					}
					matched = true
					return true
				}

				if o.Base.CheckBalance {
					bal, err := o.Network.CheckBalance(ctx, addr)
					if err == nil && bal.NonZero {
						funded := RecoveryResult{
							FundedNonMatch: true,
							Mnemonic:       cand.String(),
							Address:        addr,
							Path:           path,
							Balance:        bal,
						}
						if onFunded != nil {
							onFunded(funded)
						}
					}
				}
				return false
			}

			onProgress := func(delta uint64) {
				n := atomic.AddUint64(&attempted, delta)
				if o.OnProgress != nil {
					o.OnProgress(n)
				}
			}

			if err := Scan(ctx, cfg, onMnemonic, onProgress); err != nil {
				return RecoveryResult{}, false, err
			}
			if matched {
				return finalResult, true, nil
			}
		}
	}

	return RecoveryResult{}, false, nil
}
