package ids

import (
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestNewProducesValidULIDs(t *testing.T) {
	id := New()
	if _, err := ulid.ParseStrict(id); err != nil {
		t.Fatalf("New returned a malformed ULID %q: %v", id, err)
	}
}

func TestNewIsUniqueUnderConcurrency(t *testing.T) {
	const perGoroutine = 200
	const goroutines = 8

	var mu sync.Mutex
	seen := make(map[string]struct{}, perGoroutine*goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				id := New()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != perGoroutine*goroutines {
		t.Fatalf("expected %d unique ids, got %d", perGoroutine*goroutines, len(seen))
	}
}
