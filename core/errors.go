package core

import "errors"

// Sentinel errors surfaced by the recovery engine. Network and transport
// errors are wrapped around these with fmt.Errorf("%w", ...) so callers can
// classify failures with errors.Is rather than string matching.
var (
	// ErrInvalidConfig is returned when a RecoveryConfig fails validation
	// before any enumeration work begins.
	ErrInvalidConfig = errors.New("invalid recovery configuration")

	// ErrUnknownWord is returned when a known word in a RecoveryConfig is
	// not present in the English wordlist.
	ErrUnknownWord = errors.New("word not in wordlist")

	// ErrNonHardenedSegment is returned by the SLIP-0010 derivation path
	// parser when a path segment lacks the hardened marker.
	ErrNonHardenedSegment = errors.New("slip10: non-hardened path segments are not supported")

	// ErrInvalidPath is returned when a derivation path string is
	// malformed (does not start with "m", contains a non-numeric index).
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrUnknownNetwork is returned when a network name does not match
	// any registered Network.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNotFound is returned by Orchestrator.Run when the enumeration
	// space is exhausted without a target match, whether or not balance
	// checking was on.
	ErrNotFound = errors.New("no matching mnemonic found")

	// ErrRateLimited classifies a transport error as retry-worthy
	// throttling, surfaced by retry.go's classifier.
	ErrRateLimited = errors.New("rate limited by remote endpoint")

	// ErrTransient classifies a transport error as a retry-worthy
	// connection hiccup (reset, timeout).
	ErrTransient = errors.New("transient network error")
)
