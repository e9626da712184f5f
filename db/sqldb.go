package db

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"

	// Imports postgresql driver for database/sql
	_ "github.com/lib/pq"
	"gopkg.in/gorp.v2"
)

// Table names for each dataset.
const (
	subscriberTable  = "subscribers"
	jobTable         = "jobs"
	archivedJobTable = "archived_jobs"
	seenJobTable     = "seen_jobs"
)

var allTables = []string{subscriberTable, jobTable, archivedJobTable, seenJobTable}

// SQLDatabase holds the postgres connection and hands out per-table Stores.
type SQLDatabase struct {
	cfg  Config // Configuration to define the DB connection.
	conn *gorp.DbMap
}

func getConnectionString(cfg Config) string {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		url.PathEscape(cfg.DbUsername),
		url.PathEscape(cfg.DbPass),
		url.PathEscape(cfg.DbHost),
		url.PathEscape(cfg.DbName))
	return connectionString
}

// InitSQLDatabase creates a DB connection based on information in a Config,
// ensures the key-value tables exist, and returns a pointer to the resulting
// SQLDatabase object. If connection fails, returns an error.
func InitSQLDatabase(cfg Config) (*SQLDatabase, error) {
	connectionString := getConnectionString(cfg)
	log.Printf("Connecting to Postgres DB ... \n")
	conn, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	dbmap := &gorp.DbMap{Db: conn, Dialect: gorp.PostgresDialect{}}
	for _, table := range allTables {
		_, err = dbmap.Exec(fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value TEXT NOT NULL)", table))
		if err != nil {
			return nil, err
		}
	}
	return &SQLDatabase{cfg: cfg, conn: dbmap}, nil
}

// Subscribers returns the Store holding one record per normalized email.
func (db *SQLDatabase) Subscribers() Store { return &SQLStore{db.conn, subscriberTable} }

// Jobs returns the Store holding current job postings, keyed by job ID.
func (db *SQLDatabase) Jobs() Store { return &SQLStore{db.conn, jobTable} }

// ArchivedJobs returns the Store holding postings that dropped out of scrapes.
func (db *SQLDatabase) ArchivedJobs() Store { return &SQLStore{db.conn, archivedJobTable} }

// SeenJobs returns the Store tracking which job IDs were already notified about.
func (db *SQLDatabase) SeenJobs() Store { return &SQLStore{db.conn, seenJobTable} }

// ClearTables empties every key-value table. For tests.
func (db *SQLDatabase) ClearTables() error {
	for _, table := range allTables {
		_, err := db.conn.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			return err
		}
	}
	return nil
}

// SQLStore is a Store backed by a single postgres key-value table. Individual
// key operations are serialized by postgres; no cross-key transactions are
// performed.
type SQLStore struct {
	conn  *gorp.DbMap
	table string
}

// Get retrieves the value stored under key.
func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRow(fmt.Sprintf("SELECT value FROM %s WHERE key=$1", s.table),
		key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put upserts the value stored under key.
func (s *SQLStore) Put(key string, value string) error {
	_, err := s.conn.Exec(fmt.Sprintf(
		"INSERT INTO %s (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value=$2",
		s.table), key, value)
	return err
}

// Delete removes the row stored under key, if any.
func (s *SQLStore) Delete(key string) error {
	_, err := s.conn.Exec(fmt.Sprintf("DELETE FROM %s WHERE key=$1", s.table), key)
	return err
}

// List returns every key in the table.
func (s *SQLStore) List() ([]string, error) {
	rows, err := s.conn.Query(fmt.Sprintf("SELECT key FROM %s ORDER BY key", s.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
