package core

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// MnemonicFunc is invoked once per checksum-valid candidate the enumeration
// driver produces. Returning true tells Scan to stop early (a match was
// found). Implementations may be called concurrently from multiple workers
// and must synchronize their own state.
type MnemonicFunc func(CandidateMnemonic) bool

// ProgressFunc is invoked to report enumeration progress. The meaning of the
// delta differs by branch: when the final word is among the missing
// positions every call represents one emitted candidate; otherwise it
// represents one attempted (not necessarily checksum-valid) candidate.
// Implementations may be called concurrently and must synchronize their own
// state.
type ProgressFunc func(delta uint64)

// Scan enumerates every checksum-valid completion of cfg's partial
// mnemonic, calling onMnemonic for each one found and onProgress as work is
// attempted. It returns when the search space is exhausted, the context is
// cancelled, or onMnemonic returns true.
func Scan(ctx context.Context, cfg RecoveryConfig, onMnemonic MnemonicFunc, onProgress ProgressFunc) error {
	base, err := cfg.baseIndices()
	if err != nil {
		return err
	}
	cs := validLengths[cfg.Length]

	lastPos := cfg.Length // 1-based
	lastMissing := false
	var otherMissing []int
	for _, p := range cfg.MissingPositions {
		if p == lastPos {
			lastMissing = true
		} else {
			otherMissing = append(otherMissing, p)
		}
	}

	stopped := &stopFlag{}

	if len(otherMissing) == 0 {
		return scanOdometerLeaf(ctx, base, lastPos, lastMissing, cs, onMnemonic, onProgress, stopped)
	}

	// Parallelize over the first "other" missing position's 2048 possible
	// words; each worker owns a private copy of base and recurses through
	// the remaining missing positions sequentially.
	workers := runtime.GOMAXPROCS(0)
	if workers > 2048 {
		workers = 2048
	}
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	firstPos := otherMissing[0]
	rest := otherMissing[1:]

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			local := make([]uint16, len(base))
			copy(local, base)
			for v := w; v < 2048; v += workers {
				if stopped.isSet() {
					return nil
				}
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				local[firstPos-1] = uint16(v)
				if err := scanRemaining(gctx, local, rest, lastPos, lastMissing, cs, onMnemonic, onProgress, stopped); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// scanRemaining recurses over the remaining non-last missing positions,
// then dispatches to the leaf handling of the final word.
func scanRemaining(ctx context.Context, indices []uint16, positions []int, lastPos int, lastMissing bool, cs int, onMnemonic MnemonicFunc, onProgress ProgressFunc, stopped *stopFlag) error {
	if len(positions) == 0 {
		return scanOdometerLeaf(ctx, indices, lastPos, lastMissing, cs, onMnemonic, onProgress, stopped)
	}
	pos := positions[0]
	rest := positions[1:]
	for v := 0; v < 2048; v++ {
		if stopped.isSet() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		indices[pos-1] = uint16(v)
		if err := scanRemaining(ctx, indices, rest, lastPos, lastMissing, cs, onMnemonic, onProgress, stopped); err != nil {
			return err
		}
	}
	return nil
}

// scanOdometerLeaf resolves the final word of one combination of the
// non-last missing positions: either directly computing the checksum word
// (when the last position is itself missing) or checking the checksum
// against the fixed last word.
func scanOdometerLeaf(ctx context.Context, indices []uint16, lastPos int, lastMissing bool, cs int, onMnemonic MnemonicFunc, onProgress ProgressFunc, stopped *stopFlag) error {
	if !lastMissing {
		if stopped.isSet() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		onProgress(1)
		if verifyChecksum(indices) {
			if onMnemonic(newCandidate(append([]uint16(nil), indices...))) {
				stopped.set()
			}
		}
		return nil
	}

	suffixBits := 11 - cs
	entropy := packIndices(indices)[:entropyBytesLen(len(indices))]
	suffixCount := 1 << uint(suffixBits)
	for suffix := 0; suffix < suffixCount; suffix++ {
		if stopped.isSet() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		// The suffix bits are the low bits of entropy's final byte; patch
		// them in before recomputing the checksum so the SHA-256 input
		// reflects this candidate's last-word guess.
		patched := append([]byte(nil), entropy...)
		patchEntropySuffix(patched, indices, suffix, suffixBits, cs)
		checksum := checksumByte(patched, cs)
		lastIdx := uint16(suffix)<<uint(cs) | uint16(checksum)

		full := append([]uint16(nil), indices...)
		full[lastPos-1] = lastIdx
		onProgress(1)
		if onMnemonic(newCandidate(full)) {
			stopped.set()
		}
	}
	return nil
}

// patchEntropySuffix overwrites the trailing suffixBits bits of entropy
// (which are also the leading bits of the last word's index) with the
// candidate suffix value. Only meaningful when
// suffixBits > 0, i.e. the final word's leading bits are still entropy.
func patchEntropySuffix(entropy []byte, indices []uint16, suffix, suffixBits, cs int) {
	if suffixBits == 0 {
		return
	}
	totalBits := len(indices) * 11
	entropyBits := totalBits - cs
	// The suffix occupies bit positions [entropyBits-suffixBits, entropyBits)
	// of the full packed buffer, which are the final suffixBits bits of the
	// entropy slice.
	start := entropyBits - suffixBits
	for i := 0; i < suffixBits; i++ {
		bitPos := start + i
		bit := (suffix >> uint(suffixBits-1-i)) & 1
		byteIdx := bitPos / 8
		shift := uint(7 - bitPos%8)
		if bit == 1 {
			entropy[byteIdx] |= 1 << shift
		} else {
			entropy[byteIdx] &^= 1 << shift
		}
	}
}

// stopFlag is a simple concurrency-safe latch workers poll to stop early
// once a match has been reported.
type stopFlag struct {
	v atomic.Bool
}

func (s *stopFlag) set() {
	s.v.Store(true)
}

func (s *stopFlag) isSet() bool {
	return s.v.Load()
}
