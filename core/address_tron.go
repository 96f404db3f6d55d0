package core

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"
)

// TronDefaultPath is Tron's registered SLIP-44 coin-type path.
const TronDefaultPath = "m/44'/195'/0'/0/0"

// TronAlternativePaths includes Tron's own alternate account index plus the
// Ethereum path, since many Tron wallets reuse an EVM-derived key verbatim.
var TronAlternativePaths = []string{
	"m/44'/60'/0'/0",
	"m/44'/195'/0'/0/1",
	"m/44'/195'/0'/0/2",
}

// DeriveTronAddress derives a Tron base58check address (T-prefixed) for
// mnemonic along path. Tron reuses secp256k1 and Keccak256 exactly like
// EVM, differing only in the address prefix byte and its base58check
// encoding.
func DeriveTronAddress(mnemonic, path string) (string, error) {
	seed := bip39.NewSeed(mnemonic, "")
	master, err := NewMasterKeyBIP32(seed)
	if err != nil {
		return "", err
	}
	child, err := DeriveBIP32(master, path)
	if err != nil {
		return "", err
	}
	uncompressed := child.PublicKeyUncompressed()
	hash := crypto.Keccak256(uncompressed[1:])

	payload := make([]byte, 0, 21)
	payload = append(payload, 0x41)
	payload = append(payload, hash[12:]...)
	return base58CheckEncode(payload), nil
}

// base58CheckEncode appends a 4-byte double-SHA256 checksum to payload and
// base58-encodes the result, the encoding Tron and Dogecoin both use for
// their legacy addresses.
func base58CheckEncode(payload []byte) string {
	checksum := doubleSHA256(payload)[:4]
	full := append(append([]byte(nil), payload...), checksum...)
	return base58.Encode(full)
}

func doubleSHA256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}
