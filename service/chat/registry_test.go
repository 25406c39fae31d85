package chat

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry()

	r.Register("alice", "c1")
	id, ok := r.Lookup("alice")
	if !ok || id != "c1" {
		t.Fatalf("Lookup(alice) = %q, %v; want c1, true", id, ok)
	}

	name, ok := r.Unregister("c1")
	if !ok || name != "alice" {
		t.Fatalf("Unregister(c1) = %q, %v; want alice, true", name, ok)
	}
	if _, ok := r.Lookup("alice"); ok {
		t.Fatal("alice still resolvable after unregister")
	}
}

func TestRegistryUnregisterIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "c1")

	if _, ok := r.Unregister("c1"); !ok {
		t.Fatal("first unregister should find the entry")
	}
	if _, ok := r.Unregister("c1"); ok {
		t.Fatal("second unregister should be a no-op")
	}
	if got := r.Len(); got != 0 {
		t.Fatalf("Len() = %d after double unregister; want 0", got)
	}
}

func TestRegistryUnregisterUnknownConn(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "c1")

	if _, ok := r.Unregister("never-seen"); ok {
		t.Fatal("unregister of unknown conn should be a no-op")
	}
	if got := r.Len(); got != 1 {
		t.Fatalf("Len() = %d; want 1", got)
	}
}

func TestRegistrySnapshotInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "c1")
	r.Register("bob", "c2")
	r.Register("carol", "c3")

	want := []string{"alice", "bob", "carol"}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Snapshot() = %v; want %v", got, want)
	}

	r.Unregister("c2")
	want = []string{"alice", "carol"}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Snapshot() after unregister = %v; want %v", got, want)
	}
}

// A second join with a live name silently replaces the connection id. The old
// connection keeps running but is no longer addressable; this mirrors the
// protocol's overwrite policy.
func TestRegistryDuplicateNameOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "c1")
	r.Register("alice", "c3")

	id, ok := r.Lookup("alice")
	if !ok || id != "c3" {
		t.Fatalf("Lookup(alice) = %q, %v; want c3, true", id, ok)
	}
	if got := r.Len(); got != 1 {
		t.Fatalf("Len() = %d after duplicate join; want 1", got)
	}
	// the name keeps a single roster slot
	if got := r.Snapshot(); !reflect.DeepEqual(got, []string{"alice"}) {
		t.Fatalf("Snapshot() = %v; want [alice]", got)
	}
}

func TestRegistrySnapshotSizeMatchesLen(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 10; i++ {
		r.Register(fmt.Sprintf("user-%d", i), fmt.Sprintf("c%d", i))
	}
	r.Unregister("c3")
	r.Unregister("c7")

	if len(r.Snapshot()) != r.Len() {
		t.Fatalf("snapshot size %d != len %d", len(r.Snapshot()), r.Len())
	}
}

func TestRegistryConcurrentJoinLeave(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("user-%d", i)
			conn := fmt.Sprintf("c%d", i)
			for j := 0; j < 100; j++ {
				r.Register(name, conn)
				r.Lookup(name)
				r.Snapshot()
				r.Unregister(conn)
			}
		}(i)
	}
	wg.Wait()

	if got := r.Len(); got != 0 {
		t.Fatalf("Len() = %d after all leaves; want 0", got)
	}
}
