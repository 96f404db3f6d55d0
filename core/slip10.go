package core

import (
	"crypto/hmac"
	"crypto/sha512"
	"strconv"
	"strings"
)

// DeriveEd25519 derives a SLIP-0010 Ed25519 private key seed from a BIP-39
// seed along a hardened-only derivation path (e.g. "m/44'/501'/0'/0'").
// Every segment after "m" must carry the hardened marker; SLIP-0010's
// Ed25519 curve has no defined non-hardened child derivation, so any
// segment missing it is rejected rather than silently misderived.
//
// This mirrors the HMAC-SHA512 cascade the wallet package uses for its own
// fixed two-level account/index path, generalized to an arbitrary-depth
// path string.
func DeriveEd25519(seed []byte, path string) ([]byte, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	key, chainCode := hmacSHA512Split([]byte("ed25519 seed"), seed)
	for _, idx := range segments {
		data := make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, key...)
		data = appendUint32BE(data, 0x80000000|idx)
		key, chainCode = hmacSHA512Split(chainCode, data)
	}
	return key, nil
}

// parsePath validates and parses a derivation path string into its
// hardened child indices, rejecting any segment that is not hardened.
func parsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, ErrInvalidPath
	}
	out := make([]uint32, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		if seg == "" {
			return nil, ErrInvalidPath
		}
		if !strings.HasSuffix(seg, "'") && !strings.HasSuffix(seg, "h") && !strings.HasSuffix(seg, "H") {
			return nil, ErrNonHardenedSegment
		}
		numPart := strings.TrimRight(seg, "'hH")
		n, err := strconv.ParseUint(numPart, 10, 32)
		if err != nil {
			return nil, ErrInvalidPath
		}
		out = append(out, uint32(n))
	}
	return out, nil
}

// hmacSHA512Split computes HMAC-SHA512(key, data) and splits the 64-byte
// result into its left (private key material) and right (chain code)
// halves.
func hmacSHA512Split(key, data []byte) (left, right []byte) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// appendUint32BE appends n as 4 big-endian bytes to dst.
func appendUint32BE(dst []byte, n uint32) []byte {
	return append(dst, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
}
