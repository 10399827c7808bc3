package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_SaltedAndVerifiable(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("Lapatate.12")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, _ := h.Hash("Lapatate.12")

	if first == second {
		t.Fatalf("expected distinct hashes for the same input")
	}
	if !h.Verify("Lapatate.12", first) || !h.Verify("Lapatate.12", second) {
		t.Fatalf("both hashes should verify")
	}
	if h.Verify("wrong", first) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	if got := NewBcryptHasher(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
	if got := NewBcryptHasher(bcrypt.MaxCost + 1).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
}
