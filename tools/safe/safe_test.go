package safe

import (
	"testing"
	"time"
)

func TestSafeGoRecoversFromPanic(t *testing.T) {
	done := make(chan struct{})
	SafeGo(func() {
		defer close(done)
		panic("boom")
	})
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("goroutine never ran")
	}
	// the panic was swallowed; scheduling more work still works
	ok := make(chan struct{})
	SafeGo(func() { close(ok) })
	select {
	case <-ok:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("goroutine after recovery never ran")
	}
}

func TestMustNotNil(t *testing.T) {
	MustNotNil(&struct{}{}, "value") // must not panic

	defer func() {
		if recover() == nil {
			t.Fatal("nil pointer must panic")
		}
	}()
	var p *int
	MustNotNil(p, "pointer")
}
