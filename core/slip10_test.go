package core

import (
	"encoding/hex"
	"testing"
)

// TestDeriveEd25519MasterKey checks the unmodified HMAC-SHA512("ed25519
// seed", seed) master derivation against an independently computed vector.
func TestDeriveEd25519MasterKey(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	got, err := DeriveEd25519(seed, "m")
	if err != nil {
		t.Fatalf("DeriveEd25519: %v", err)
	}
	want, _ := hex.DecodeString("2b4be7f19ee27bbf30c667b642d5f4aa69fd169872f8fc3059c08ebae2eb19e7")
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("master key = %x, want %x", got, want)
	}
}

func TestDeriveEd25519HardenedChild(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	got, err := DeriveEd25519(seed, "m/0'")
	if err != nil {
		t.Fatalf("DeriveEd25519: %v", err)
	}
	want, _ := hex.DecodeString("68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3")
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("child key = %x, want %x", got, want)
	}
}

func TestDeriveEd25519RejectsNonHardenedSegment(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	_, err := DeriveEd25519(seed, "m/0")
	if err == nil {
		t.Fatal("expected error for non-hardened segment")
	}
}

func TestDeriveEd25519RejectsMalformedPath(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	for _, path := range []string{"", "44'/0'", "m//0'", "x/0'"} {
		if _, err := DeriveEd25519(seed, path); err == nil {
			t.Errorf("path %q: expected error, got none", path)
		}
	}
}
