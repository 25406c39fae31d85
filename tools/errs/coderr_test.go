package errs

import (
	"errors"
	"strings"
	"testing"
)

func TestCodeErrorIs(t *testing.T) {
	if !ErrUserExists.Is(ErrUserExists) {
		t.Fatal("sentinel must match itself")
	}
	if !ErrUserExists.Is(ErrUserExists.WithDetail("username=bob")) {
		t.Fatal("Is must match on code, not detail")
	}
	if ErrUserExists.Is(ErrUserNotFound) {
		t.Fatal("different codes must not match")
	}
	if ErrUserExists.Is(errors.New("plain")) {
		t.Fatal("plain error must not match")
	}
}

func TestCodeErrorIsThroughWrap(t *testing.T) {
	wrapped := Wrap(ErrPassword.WithDetail("user=carol"))
	if !ErrPassword.Is(wrapped) {
		t.Fatal("Is must unwrap through pkg/errors stack")
	}
}

func TestWithDetailDoesNotMutate(t *testing.T) {
	base := NewCodeError(9000, "base")
	d1 := base.WithDetail("first")
	d2 := d1.WithDetail("second")
	if base.Detail != "" {
		t.Fatal("WithDetail must not mutate the receiver")
	}
	if d1.Detail != "first" {
		t.Fatalf("d1.Detail = %q", d1.Detail)
	}
	if d2.Detail != "first, second" {
		t.Fatalf("d2.Detail = %q", d2.Detail)
	}
}

func TestCodeErrorError(t *testing.T) {
	e := NewCodeError(4242, "boom").WithDetail("k=v")
	got := e.Error()
	for _, want := range []string{"4242", "boom", "k=v"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Error() = %q; missing %q", got, want)
		}
	}
}

func TestWrapMsg(t *testing.T) {
	if WrapMsg(nil, "ignored") != nil {
		t.Fatal("WrapMsg(nil) must return nil")
	}
	err := WrapMsg(errors.New("inner"), "load user", "userID", "u1", "tries", 3)
	msg := err.Error()
	for _, want := range []string{"inner", "load user", "userID=u1", "tries=3"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("WrapMsg result %q missing %q", msg, want)
		}
	}
}
