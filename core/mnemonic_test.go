package core

import "testing"

func TestVerifyChecksumKnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		want     bool
	}{
		{
			name:     "all abandon plus about",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			want:     true,
		},
		{
			name:     "all abandon plus wrong last word",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			want:     false,
		},
		{
			name:     "zoo checksum vector",
			mnemonic: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
			want:     true,
		},
		{
			name:     "24-word all abandon plus art",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			want:     true,
		},
		{
			name:     "24-word all abandon plus wrong last word",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			want:     false,
		},
		{
			name:     "24-word zoo checksum vector",
			mnemonic: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote",
			want:     true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			indices := wordsToIndices(t, tc.mnemonic)
			if got := verifyChecksum(indices); got != tc.want {
				t.Errorf("verifyChecksum(%q) = %v, want %v", tc.mnemonic, got, tc.want)
			}
		})
	}
}

func wordsToIndices(t *testing.T, mnemonic string) []uint16 {
	t.Helper()
	words := splitWords(mnemonic)
	indices := make([]uint16, len(words))
	for i, w := range words {
		idx, ok := LookupWord(w)
		if !ok {
			t.Fatalf("word %q not in wordlist", w)
		}
		indices[i] = idx
	}
	return indices
}

func splitWords(s string) []string {
	var words []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				words = append(words, s[start:i])
			}
			start = i + 1
		}
	}
	return words
}

func TestRecoveryConfigValidate(t *testing.T) {
	base := RecoveryConfig{
		Network: "evm",
		Length:  12,
		KnownWords: []TestWordInfo{
			{Pos: 1, Word: "abandon"}, {Pos: 2, Word: "abandon"}, {Pos: 3, Word: "abandon"},
			{Pos: 4, Word: "abandon"}, {Pos: 5, Word: "abandon"}, {Pos: 6, Word: "abandon"},
			{Pos: 7, Word: "abandon"}, {Pos: 8, Word: "abandon"}, {Pos: 9, Word: "abandon"},
			{Pos: 10, Word: "abandon"}, {Pos: 11, Word: "abandon"},
		},
		MissingPositions: []int{12},
		TargetAddress:    "0xabc",
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config, got error: %v", err)
	}

	t.Run("bad length", func(t *testing.T) {
		c := base
		c.Length = 13
		if err := c.Validate(); err == nil {
			t.Fatal("expected error for invalid length")
		}
	})

	t.Run("unknown word", func(t *testing.T) {
		c := base
		c.KnownWords = []TestWordInfo{{Pos: 1, Word: "notaword"}}
		if err := c.Validate(); err == nil {
			t.Fatal("expected error for unknown word")
		}
	})

	t.Run("position both known and missing", func(t *testing.T) {
		c := base
		c.MissingPositions = append([]int{1}, c.MissingPositions...)
		if err := c.Validate(); err == nil {
			t.Fatal("expected error for overlapping positions")
		}
	})

	t.Run("degenerate config rejected", func(t *testing.T) {
		c := base
		c.TargetAddress = ""
		c.CheckBalance = false
		if err := c.Validate(); err == nil {
			t.Fatal("expected error when neither target nor balance check is requested")
		}
	})

	t.Run("no missing positions", func(t *testing.T) {
		c := base
		c.MissingPositions = nil
		if err := c.Validate(); err == nil {
			t.Fatal("expected error for empty missing positions")
		}
	})
}
