package core

import (
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ExtendedKey is a BIP-32 extended private key: a secp256k1 scalar plus its
// chain code, sufficient to derive any descendant along a path.
type ExtendedKey struct {
	Key       []byte // 32 bytes
	ChainCode []byte // 32 bytes
}

// pathSegment is one parsed BIP-32 path component; Hardened segments add
// 0x80000000 to Index during derivation.
type pathSegment struct {
	Index    uint32
	Hardened bool
}

// NewMasterKeyBIP32 derives the master extended key from a BIP-39 seed
// using the standard "Bitcoin seed" HMAC key, as used by every secp256k1
// coin this engine supports (EVM, Tron, Dogecoin).
func NewMasterKeyBIP32(seed []byte) (*ExtendedKey, error) {
	key, chain := hmacSHA512Split([]byte("Bitcoin seed"), seed)
	if !validPrivateScalar(key) {
		return nil, ErrInvalidPath
	}
	return &ExtendedKey{Key: key, ChainCode: chain}, nil
}

// DeriveBIP32 walks path (e.g. "m/44'/60'/0'/0/0") from master, supporting
// both hardened and non-hardened segments.
func DeriveBIP32(master *ExtendedKey, path string) (*ExtendedKey, error) {
	segments, err := parseBIP32Path(path)
	if err != nil {
		return nil, err
	}
	cur := master
	for _, seg := range segments {
		cur, err = cur.child(seg)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func parseBIP32Path(path string) ([]pathSegment, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, ErrInvalidPath
	}
	out := make([]pathSegment, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p == "" {
			return nil, ErrInvalidPath
		}
		hardened := strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h") || strings.HasSuffix(p, "H")
		numPart := strings.TrimRight(p, "'hH")
		n, err := strconv.ParseUint(numPart, 10, 32)
		if err != nil {
			return nil, ErrInvalidPath
		}
		out = append(out, pathSegment{Index: uint32(n), Hardened: hardened})
	}
	return out, nil
}

// child derives one BIP-32 child key per SLIP/BIP-32: hardened children mix
// in the parent's private scalar, non-hardened children mix in the
// parent's compressed public key.
func (k *ExtendedKey) child(seg pathSegment) (*ExtendedKey, error) {
	var data []byte
	childIndex := seg.Index
	if seg.Hardened {
		childIndex |= 0x80000000
		data = make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, k.Key...)
	} else {
		pub := k.publicKeyCompressed()
		data = make([]byte, 0, 33+4)
		data = append(data, pub...)
	}
	data = appendUint32BE(data, childIndex)

	il, chain := hmacSHA512Split(k.ChainCode, data)
	if !validPrivateScalar(il) {
		return nil, ErrInvalidPath
	}

	var ilScalar, parentScalar, childScalar secp256k1.ModNScalar
	ilScalar.SetByteSlice(il)
	parentScalar.SetByteSlice(k.Key)
	childScalar.Add2(&ilScalar, &parentScalar)
	if childScalar.IsZero() {
		return nil, ErrInvalidPath
	}

	childBytes := childScalar.Bytes()
	return &ExtendedKey{Key: childBytes[:], ChainCode: chain}, nil
}

// publicKeyCompressed returns the 33-byte SEC1-compressed public key for
// this extended key's private scalar.
func (k *ExtendedKey) publicKeyCompressed() []byte {
	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(k.Key)
	priv := secp256k1.NewPrivateKey(&scalar)
	return priv.PubKey().SerializeCompressed()
}

// PublicKeyUncompressed returns the 65-byte uncompressed public key
// (0x04 prefix followed by X and Y), as EVM-family address derivation
// requires.
func (k *ExtendedKey) PublicKeyUncompressed() []byte {
	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(k.Key)
	priv := secp256k1.NewPrivateKey(&scalar)
	return priv.PubKey().SerializeUncompressed()
}

// PublicKeyCompressed exposes the compressed public key for callers outside
// this package (Dogecoin's P2PKH address derivation).
func (k *ExtendedKey) PublicKeyCompressed() []byte {
	return k.publicKeyCompressed()
}

// validPrivateScalar reports whether b is a nonzero scalar less than the
// secp256k1 curve order, as BIP-32 requires of every derived key.
func validPrivateScalar(b []byte) bool {
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	return !overflow && !s.IsZero()
}
