package core

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"
)

// SolanaDefaultPath is the Solana CLI / Phantom-style full-hardened path.
const SolanaDefaultPath = "m/44'/501'/0'/0'"

// SolanaAlternativePaths covers the other hardened-path conventions Solana
// wallets have shipped with over time.
var SolanaAlternativePaths = []string{
	"m/44'/501'/0'",
	"m/44'/501'/0'/0",
	"m/44'/501'/1'/0'",
	"m/44'/501'/0'/0'/0'",
	"m/44'/501'",
}

// DeriveSolanaAddress derives a Solana address for mnemonic along path.
// Solana addresses are simply the base58 encoding of the raw Ed25519
// public key, derived via SLIP-0010's hardened-only cascade.
func DeriveSolanaAddress(mnemonic, path string) (string, error) {
	seed := bip39.NewSeed(mnemonic, "")
	priv, err := DeriveEd25519(seed, path)
	if err != nil {
		return "", err
	}
	pub := ed25519.NewKeyFromSeed(priv).Public().(ed25519.PublicKey)
	return base58.Encode(pub), nil
}
