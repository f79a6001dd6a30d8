package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestSetGetDelete(t *testing.T) {
	c := New[string, int]()

	if _, ok := c.Get("missing"); ok {
		t.Error("expected ok=false for missing key")
	}

	c.Set("a", 1)
	c.Set("b", 2)
	if c.Size() != 2 {
		t.Errorf("expected size 2, got %d", c.Size())
	}

	c.Set("a", 10)
	val, ok := c.Get("a")
	if !ok || val != 10 {
		t.Errorf("expected overwritten value 10, got %d (ok=%v)", val, ok)
	}

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to be deleted")
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1 after delete, got %d", c.Size())
	}
}

func TestGetOrFill(t *testing.T) {
	c := New[string, []string]()

	calls := 0
	fill := func() ([]string, error) {
		calls++
		return []string{"Action", "Drama"}, nil
	}

	got, err := c.GetOrFill("genres", fill)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "Action" {
		t.Errorf("unexpected fill result: %v", got)
	}

	_, err = c.GetOrFill("genres", fill)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected fill to run once, ran %d times", calls)
	}
}

func TestGetOrFillError(t *testing.T) {
	c := New[string, int]()

	fillErr := errors.New("upstream unavailable")
	_, err := c.GetOrFill("key", func() (int, error) {
		return 0, fillErr
	})
	if !errors.Is(err, fillErr) {
		t.Fatalf("expected fill error, got %v", err)
	}

	// A failed fill must not poison the cache.
	if c.Size() != 0 {
		t.Errorf("expected size 0 after failed fill, got %d", c.Size())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	numGoroutines := 50
	numOperations := 200

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				c.Set(key, key)
			}
		}(i)
	}
	wg.Wait()

	expectedSize := numGoroutines * numOperations
	if c.Size() != expectedSize {
		t.Errorf("expected size %d after concurrent writes, got %d", expectedSize, c.Size())
	}

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				val, ok := c.Get(key)
				if !ok || val != key {
					t.Errorf("key %d: got %d (ok=%v)", key, val, ok)
				}
				c.Delete(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Size() != 0 {
		t.Errorf("expected size 0 after concurrent deletes, got %d", c.Size())
	}
}
