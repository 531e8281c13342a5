package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !h.Verify("pw123", hash) {
		t.Error("correct password rejected")
	}
	if h.Verify("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestPasswordHashSalted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("same-input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Hash("same-input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same input must differ (random salt)")
	}
}

func TestVerifyGarbageHashIsFalseNotError(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	if h.Verify("pw", "not-a-bcrypt-hash") {
		t.Error("garbage hash verified")
	}
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	h := NewPasswordHasher(99)
	if _, err := h.Hash("pw"); err != nil {
		t.Fatalf("hash with fallback cost: %v", err)
	}
}
