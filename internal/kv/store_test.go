package kv

import (
	"fmt"
	"sync"
	"testing"
)

func Test_PutGet_LastWriteWins(t *testing.T) {

	store := NewStore()

	store.Put("a", "1")
	store.Put("a", "2")

	value, ok := store.Get("a")
	if !ok {
		t.Fatal("Get(a) not found; want found")
	}
	if value != "2" {
		t.Fatalf("Get(a) = %q; want %q", value, "2")
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", store.Len())
	}
}

func Test_Delete_AbsentKeyIsNoop(t *testing.T) {

	store := NewStore()
	store.Put("a", "1")

	// Deleting a key that was never inserted must not fail or
	// disturb other entries.
	store.Delete("b")

	if _, ok := store.Get("a"); !ok {
		t.Fatal("Get(a) not found after unrelated Delete(b)")
	}

	store.Delete("a")
	store.Delete("a")

	if _, ok := store.Get("a"); ok {
		t.Fatal("Get(a) found after Delete(a)")
	}
	if store.Len() != 0 {
		t.Fatalf("Len() = %d; want 0", store.Len())
	}
}

func Test_InsertDelete_RoundTrip(t *testing.T) {

	store := NewStore()

	store.Put("a", "1")
	store.Delete("a")

	if _, ok := store.Get("a"); ok {
		t.Fatal("Get(a) found; want store back to prior state")
	}
	if len(store.Entries()) != 0 {
		t.Fatalf("Entries() = %v; want empty", store.Entries())
	}
}

func Test_Entries_SortedByKey(t *testing.T) {

	store := NewStore()
	store.Put("b", "2")
	store.Put("a", "1")
	store.Put("c", "3")

	want := []Entry{{"a", "1"}, {"b", "2"}, {"c", "3"}}

	entries := store.Entries()
	if len(entries) != len(want) {
		t.Fatalf("Entries() has %d entries; want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e != want[i] {
			t.Fatalf("Entries()[%d] = %v; want %v", i, e, want[i])
		}
	}
}

func Test_ConcurrentPuts_NoLostUpdates(t *testing.T) {

	store := NewStore()

	const n = 64

	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			store.Put(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
		}(i)
	}

	wg.Wait()

	// Every non-conflicting write must be visible.
	if store.Len() != n {
		t.Fatalf("Len() = %d; want %d", store.Len(), n)
	}
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("key-%d", i)
		value, ok := store.Get(key)
		if !ok {
			t.Fatalf("Get(%s) not found; want found", key)
		}
		if want := fmt.Sprintf("value-%d", i); value != want {
			t.Fatalf("Get(%s) = %q; want %q", key, value, want)
		}
	}
}
