package ids

import (
	"sync"
	"testing"
)

func TestGenerateUnique(t *testing.T) {
	const n = 10000
	seen := make(map[int64]struct{}, n)
	for i := 0; i < n; i++ {
		id := Generate()
		if id <= 0 {
			t.Fatalf("non-positive id %d", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
}

func TestGenerateMonotonic(t *testing.T) {
	prev := Generate()
	for i := 0; i < 1000; i++ {
		id := Generate()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestGenerateConcurrent(t *testing.T) {
	const workers = 16
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, Generate())
			}
			mu.Lock()
			for _, id := range local {
				if _, dup := seen[id]; dup {
					t.Errorf("duplicate id %d", id)
				}
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
}

func TestSetNodeIDClampsRange(t *testing.T) {
	SetNodeID(77)
	id := Generate()
	if node := (id >> 12) & 0x3FF; node != 77 {
		t.Fatalf("node bits = %d; want 77", node)
	}

	SetNodeID(5000) // out of range falls back to 1
	id = Generate()
	if node := (id >> 12) & 0x3FF; node != 1 {
		t.Fatalf("node bits = %d; want fallback 1", node)
	}
	SetNodeID(1)
}

func TestGenerateString(t *testing.T) {
	s := GenerateString()
	if s == "" || s == "0" {
		t.Fatalf("GenerateString = %q", s)
	}
}
