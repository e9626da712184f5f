package db

import (
	"reflect"
	"testing"
)

func TestMemStoreCRUD(t *testing.T) {
	store := InitMemStore()

	if _, ok, err := store.Get("missing"); ok || err != nil {
		t.Errorf("Get on empty store: ok=%v err=%v", ok, err)
	}
	if err := store.Put("a", "1"); err != nil {
		t.Fatal(err)
	}
	value, ok, err := store.Get("a")
	if err != nil || !ok || value != "1" {
		t.Errorf("Get(a) = %q, %v, %v", value, ok, err)
	}

	// Put is an upsert.
	store.Put("a", "2")
	value, _, _ = store.Get("a")
	if value != "2" {
		t.Errorf("Expected overwritten value, got %q", value)
	}

	if err := store.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get("a"); ok {
		t.Errorf("Key should be gone after Delete")
	}
	// Deleting a missing key is not an error.
	if err := store.Delete("a"); err != nil {
		t.Errorf("Delete of missing key errored: %v", err)
	}
}

func TestMemStoreListSorted(t *testing.T) {
	store := InitMemStore()
	for _, key := range []string{"c", "a", "b"} {
		store.Put(key, "x")
	}
	keys, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
		t.Errorf("Expected sorted keys, got %v", keys)
	}

	store.Clear()
	keys, _ = store.List()
	if len(keys) != 0 {
		t.Errorf("Clear should empty the store, got %v", keys)
	}
}
