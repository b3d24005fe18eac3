package token

import (
	"errors"
	"testing"
	"time"
)

func TestSignAndVerify(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	tok, err := signer.Sign("goal-123")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	err = signer.Verify(tok, "goal-123")
	if err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestVerifyWrongGoal(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	tok, err := signer.Sign("goal-123")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	err = signer.Verify(tok, "goal-456")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got error %v, want ErrInvalidToken", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)
	other := NewSigner("other-secret", time.Hour)

	tok, err := other.Sign("goal-123")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	err = signer.Verify(tok, "goal-123")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got error %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	signer := NewSigner("test-secret", -time.Minute)

	tok, err := signer.Sign("goal-123")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	err = signer.Verify(tok, "goal-123")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got error %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		err := signer.Verify(tok, "goal-123")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): got error %v, want ErrInvalidToken", tok, err)
		}
	}
}
