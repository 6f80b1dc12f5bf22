package auth

import (
	"strings"
	"testing"
)

func TestPBKDF2HasherRoundTrip(t *testing.T) {
	h := NewPBKDF2Hasher(1000)
	hash, err := h.Hash("S3cretPass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "pbkdf2:sha256:1000$") {
		t.Fatalf("unexpected hash format %q", hash)
	}
	if strings.Contains(hash, "S3cretPass") {
		t.Fatal("hash must not contain the plaintext password")
	}
	if err := h.Compare(hash, "S3cretPass"); err != nil {
		t.Fatalf("compare failed for correct password: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err != ErrHashMismatch {
		t.Fatalf("expected mismatch error, got %v", err)
	}
}

func TestPBKDF2HasherSaltsDiffer(t *testing.T) {
	h := NewPBKDF2Hasher(1000)
	first, err := h.Hash("password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatal("expected per-password random salt to produce distinct hashes")
	}
}

func TestPBKDF2HasherDefaultIterations(t *testing.T) {
	h := NewPBKDF2Hasher(0)
	if h.iterations != defaultIterations {
		t.Fatalf("expected default iterations, got %d", h.iterations)
	}
}

func TestPBKDF2HasherCompareMalformed(t *testing.T) {
	h := NewPBKDF2Hasher(1000)
	cases := []string{
		"",
		"plaintext",
		"pbkdf2:sha256:abc$00$00",
		"pbkdf2:sha256:1000$zz$00",
		"pbkdf2:sha256:1000$00$zz",
		"bcrypt:1000$00$00",
	}
	for _, hash := range cases {
		if err := h.Compare(hash, "password"); err != ErrMalformedHash {
			t.Fatalf("hash %q: expected ErrMalformedHash, got %v", hash, err)
		}
	}
}
