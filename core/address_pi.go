package core

import (
	"crypto/ed25519"
	"encoding/base32"

	"github.com/tyler-smith/go-bip39"
)

// PiDefaultPath matches Pi Network's registered SLIP-44 coin type.
const PiDefaultPath = "m/44'/314159'/0'"

// PiAlternativePaths covers the account-index variants seen across Pi
// wallet implementations.
var PiAlternativePaths = []string{
	"m/44'/314159'/0'/0'",
	"m/44'/314159'/1'",
}

// stellarEd25519PublicKeyVersion is strkey's version byte for an Ed25519
// public key ("G..." addresses): account ID type 6, shifted into strkey's
// 5-bit version field.
const stellarEd25519PublicKeyVersion = 6 << 3

// DerivePiAddress derives a Pi (Stellar strkey) address for mnemonic along
// path: SLIP-0010 Ed25519 derivation, then strkey encoding of the raw
// public key.
func DerivePiAddress(mnemonic, path string) (string, error) {
	seed := bip39.NewSeed(mnemonic, "")
	priv, err := DeriveEd25519(seed, path)
	if err != nil {
		return "", err
	}
	pub := ed25519.NewKeyFromSeed(priv).Public().(ed25519.PublicKey)
	return encodeStrkey(stellarEd25519PublicKeyVersion, pub), nil
}

// encodeStrkey implements Stellar's strkey format: a version byte, the raw
// payload, and a CRC-16/XModem checksum over both, base32-encoded without
// padding. No strkey library appears anywhere in the reference corpus, so
// this is a direct, from-scratch implementation of the published algorithm.
func encodeStrkey(version byte, payload []byte) string {
	data := make([]byte, 0, 1+len(payload)+2)
	data = append(data, version)
	data = append(data, payload...)

	checksum := crc16XModem(data)
	data = append(data, byte(checksum), byte(checksum>>8))

	return base32.StdEncoding.EncodeToString(data)
}

// crc16XModem computes the CRC-16/XMODEM checksum (poly 0x1021, init 0, no
// input/output reflection) strkey requires.
func crc16XModem(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
