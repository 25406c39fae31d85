package security

import (
	"testing"
	"time"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	opts := DefaultOptions([]byte("test-secret"))

	token, hash, exp, err := Generate(opts, "user-1", []string{"read"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if token == "" || hash == "" {
		t.Fatal("empty token or hash")
	}
	if time.Until(exp) <= 0 {
		t.Fatal("token already expired")
	}

	claims, err := Verify(opts, token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID() != "user-1" {
		t.Fatalf("UserID() = %q; want user-1", claims.UserID())
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, _, _, err := Generate(DefaultOptions([]byte("secret-a")), "user-1", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := Verify(DefaultOptions([]byte("secret-b")), token); err == nil {
		t.Fatal("Verify should fail with the wrong secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := Verify(DefaultOptions([]byte("s")), "not.a.token"); err == nil {
		t.Fatal("Verify should fail on garbage")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("tok")
	b := HashToken("tok")
	if a != b {
		t.Fatal("hash must be deterministic")
	}
	if a == HashToken("other") {
		t.Fatal("different tokens must not collide trivially")
	}
	if len(a) == 0 || a[:7] != "sha256:" {
		t.Fatalf("unexpected hash format %q", a)
	}
}

func TestSigningMethodSelection(t *testing.T) {
	for _, alg := range []string{"", "HS256", "hs384", " HS512 "} {
		if _, err := signingMethod(alg); err != nil {
			t.Errorf("signingMethod(%q): %v", alg, err)
		}
	}
	if _, err := signingMethod("RS256"); err == nil {
		t.Error("RS256 must be rejected")
	}
}
