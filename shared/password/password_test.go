package password_test

import (
	"errors"
	"jumpy/shared/password"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("sup3r-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "sup3r-secret" {
		t.Error("expected hash to differ from plaintext")
	}

	if err := password.Verify("sup3r-secret", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := password.Verify("wrong-password", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestHashEmptyPassword(t *testing.T) {
	if _, err := password.Hash(""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestVerifyEmptyInputs(t *testing.T) {
	if err := password.Verify("", "hash"); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}

	if err := password.Verify("secret", ""); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}
