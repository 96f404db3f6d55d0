package core

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// EVMDefaultPath is the standard Ethereum derivation path.
const EVMDefaultPath = "m/44'/60'/0'/0/0"

// EVMAlternativePaths covers the other derivation conventions wallets in
// the wild use for the first few EVM accounts.
var EVMAlternativePaths = []string{
	"m/44'/60'/0'/0/1",
	"m/44'/60'/0'/0/2",
	"m/44'/60'/0'/0/3",
	"m/44'/60'/0'/0/4",
	"m/44'/60'/0'/0/5",
	"m/44'/60'/0'",
	"m/44'/60'/1'/0/0",
	"m/44'/60'/2'/0/0",
}

// DeriveEVMAddress derives the EIP-55 checksummed address for mnemonic
// along path.
func DeriveEVMAddress(mnemonic, path string) (string, error) {
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
	hash := crypto.Keccak256(uncompressed[1:]) // drop the 0x04 prefix
	return toChecksumAddress(hash[12:]), nil
}

// toChecksumAddress applies EIP-55: the hex digits of the address are
// uppercased wherever the corresponding nibble of Keccak256(lowercase hex)
// is 8 or greater.
func toChecksumAddress(addr20 []byte) string {
	lower := hex.EncodeToString(addr20)
	hash := crypto.Keccak256([]byte(lower))
	hashHex := hex.EncodeToString(hash)

	var b strings.Builder
	b.WriteString("0x")
	for i, c := range lower {
		if c >= '0' && c <= '9' {
			b.WriteByte(byte(c))
			continue
		}
		nibble := hashHex[i]
		if nibble >= '8' {
			b.WriteByte(byte(c - 'a' + 'A'))
		} else {
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}
