package memostore

import (
	"fmt"
	"sync"
	"testing"
)

func TestMap_LookupMiss(t *testing.T) {
	store := New[string]()

	if _, ok := store.Lookup("absent"); ok {
		t.Error("Lookup on an empty store must miss")
	}
}

func TestMap_StoreThenLookup(t *testing.T) {
	store := New[string]()

	store.Store("k", 42)

	got, ok := store.Lookup("k")
	if !ok {
		t.Fatal("expected a hit after Store")
	}
	if got != 42 {
		t.Errorf("Lookup = %v, want 42", got)
	}
}

func TestMap_FirstWriteWins(t *testing.T) {
	store := New[string]()

	store.Store("k", "first")
	store.Store("k", "second")

	got, _ := store.Lookup("k")
	if got != "first" {
		t.Errorf("entry was replaced: got %v, want first", got)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

func TestMap_ConcurrentStores(t *testing.T) {
	store := New[string]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Store("k", fmt.Sprintf("writer-%d", n))
		}(i)
	}
	wg.Wait()

	first, ok := store.Lookup("k")
	if !ok {
		t.Fatal("expected a stored value")
	}

	// Every subsequent read observes the same winner.
	for i := 0; i < 100; i++ {
		if got, _ := store.Lookup("k"); got != first {
			t.Fatalf("value changed after first write: %v != %v", got, first)
		}
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}
