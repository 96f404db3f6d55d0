package core

import (
	"encoding/hex"
	"testing"
)

// TestNewMasterKeyBIP32 checks the "Bitcoin seed" HMAC master derivation
// against BIP-32's official test vector 1.
func TestNewMasterKeyBIP32(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKeyBIP32(seed)
	if err != nil {
		t.Fatalf("NewMasterKeyBIP32: %v", err)
	}
	wantKey, _ := hex.DecodeString("e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35")
	wantChain, _ := hex.DecodeString("873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508")
	if hex.EncodeToString(master.Key) != hex.EncodeToString(wantKey) {
		t.Errorf("master key = %x, want %x", master.Key, wantKey)
	}
	if hex.EncodeToString(master.ChainCode) != hex.EncodeToString(wantChain) {
		t.Errorf("master chain = %x, want %x", master.ChainCode, wantChain)
	}
}

// TestDeriveBIP32HardenedChild checks a single hardened derivation step
// against BIP-32's official test vector 1, chain m/0'.
func TestDeriveBIP32HardenedChild(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKeyBIP32(seed)
	if err != nil {
		t.Fatalf("NewMasterKeyBIP32: %v", err)
	}
	child, err := DeriveBIP32(master, "m/0'")
	if err != nil {
		t.Fatalf("DeriveBIP32: %v", err)
	}
	wantKey, _ := hex.DecodeString("edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea")
	wantChain, _ := hex.DecodeString("47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141")
	if hex.EncodeToString(child.Key) != hex.EncodeToString(wantKey) {
		t.Errorf("child key = %x, want %x", child.Key, wantKey)
	}
	if hex.EncodeToString(child.ChainCode) != hex.EncodeToString(wantChain) {
		t.Errorf("child chain = %x, want %x", child.ChainCode, wantChain)
	}
}

func TestDeriveBIP32RejectsMalformedPath(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKeyBIP32(seed)
	if err != nil {
		t.Fatalf("NewMasterKeyBIP32: %v", err)
	}
	for _, path := range []string{"", "0'", "m//0"} {
		if _, err := DeriveBIP32(master, path); err == nil {
			t.Errorf("path %q: expected error, got none", path)
		}
	}
}

func TestDeriveBIP32NonHardenedChildProducesDifferentKey(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKeyBIP32(seed)
	if err != nil {
		t.Fatalf("NewMasterKeyBIP32: %v", err)
	}
	hardened, err := DeriveBIP32(master, "m/0'")
	if err != nil {
		t.Fatalf("DeriveBIP32 hardened: %v", err)
	}
	plain, err := DeriveBIP32(master, "m/0")
	if err != nil {
		t.Fatalf("DeriveBIP32 non-hardened: %v", err)
	}
	if hex.EncodeToString(hardened.Key) == hex.EncodeToString(plain.Key) {
		t.Error("hardened and non-hardened derivation at index 0 produced the same key")
	}
}
