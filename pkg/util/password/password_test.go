package password

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	password := "correcthorsebatterystaple"

	hash, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// Check PHC format
	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("Hash() format invalid, got %s", hash)
	}

	// Hashing the same password twice must produce different salts
	hash2, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == hash2 {
		t.Error("Hash() produced identical hashes for the same password")
	}
}

func TestVerify(t *testing.T) {
	password := "пароль-клиента-123"

	hash, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if err := Verify(hash, password); err != nil {
		t.Errorf("Verify() with correct password failed: %v", err)
	}

	if err := Verify(hash, "wrong-password"); err != ErrMismatch {
		t.Errorf("Verify() with wrong password: got %v, want ErrMismatch", err)
	}
}

func TestVerifyInvalidHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536$c2FsdA$aGFzaA",
	}
	for _, h := range cases {
		if err := Verify(h, "whatever"); err == nil {
			t.Errorf("Verify(%q) succeeded, want error", h)
		}
	}
}

func TestMatch(t *testing.T) {
	hash, err := Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !Match(hash, "secret") {
		t.Error("Match() with correct password = false, want true")
	}
	if Match(hash, "other") {
		t.Error("Match() with wrong password = true, want false")
	}
}
