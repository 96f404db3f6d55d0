package core

import (
	"crypto/sha256"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for legacy P2PKH address hashing
)

// DogeDefaultPath matches Dogecoin's registered SLIP-44 coin type.
const DogeDefaultPath = "m/44'/3'/0'/0/0"

// DogeAlternativePaths covers the account-level and alternate-index
// conventions seen in Dogecoin wallets.
var DogeAlternativePaths = []string{
	"m/44'/3'/0'",
	"m/44'/3'/0'/0",
	"m/44'/3'/1'/0/0",
}

// dogeVersionByte is Dogecoin mainnet's P2PKH address version.
const dogeVersionByte = 0x1e

// DeriveDogeAddress derives a legacy P2PKH Dogecoin address for mnemonic
// along path: SHA-256 then RIPEMD-160 of the compressed public key,
// version-prefixed and base58check-encoded.
func DeriveDogeAddress(mnemonic, path string) (string, error) {
	seed := bip39.NewSeed(mnemonic, "")
	master, err := NewMasterKeyBIP32(seed)
	if err != nil {
		return "", err
	}
	child, err := DeriveBIP32(master, path)
	if err != nil {
		return "", err
	}
	pubHash := hash160(child.PublicKeyCompressed())

	payload := make([]byte, 0, 21)
	payload = append(payload, dogeVersionByte)
	payload = append(payload, pubHash...)
	return base58CheckEncode(payload), nil
}

// hash160 is SHA-256 followed by RIPEMD-160, the standard Bitcoin-family
// public key hash.
func hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(sha[:])
	return r.Sum(nil)
}
