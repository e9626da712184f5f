package db

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// Exercises the real postgres-backed store. Needs a reachable test database;
// set TEST_DB=1 (and the DB_* variables) to run.
func testSQLDatabase(t *testing.T) *SQLDatabase {
	t.Helper()
	if os.Getenv("TEST_DB") == "" {
		t.Skip("set TEST_DB=1 to run postgres tests")
	}
	godotenv.Overload(".env.test")
	cfg, err := LoadEnvironmentVariables()
	if err != nil {
		t.Fatal(err)
	}
	sqldb, err := InitSQLDatabase(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := sqldb.ClearTables(); err != nil {
		t.Fatal(err)
	}
	return sqldb
}

func TestSQLStoreCRUD(t *testing.T) {
	sqldb := testSQLDatabase(t)
	store := sqldb.Subscribers()

	if _, ok, err := store.Get("missing"); ok || err != nil {
		t.Errorf("Get on empty table: ok=%v err=%v", ok, err)
	}
	if err := store.Put("a@b.com", `{"token":"t1"}`); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("a@b.com", `{"token":"t2"}`); err != nil {
		t.Fatalf("Put should upsert: %v", err)
	}
	value, ok, err := store.Get("a@b.com")
	if err != nil || !ok || value != `{"token":"t2"}` {
		t.Errorf("Get = %q, %v, %v", value, ok, err)
	}

	store.Put("c@d.com", "{}")
	keys, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "a@b.com" || keys[1] != "c@d.com" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}

	if err := store.Delete("a@b.com"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get("a@b.com"); ok {
		t.Errorf("Key should be gone after Delete")
	}
}

func TestSQLStoresAreSeparate(t *testing.T) {
	sqldb := testSQLDatabase(t)
	sqldb.Subscribers().Put("a@b.com", "{}")
	keys, err := sqldb.Jobs().List()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("Jobs table should not see subscriber keys, got %v", keys)
	}
}
