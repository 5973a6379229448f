package datastore

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

// KeyValueStore is the storage capability palettes are persisted through.
// Set replaces the whole value for key.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Delete(key string) error
}

type KVDatabase struct {
	database *sqlx.DB
}

func NewKVDatabase(db *sqlx.DB) (KVDatabase, error) {
	if db == nil {
		return KVDatabase{}, errors.New("nil database handle")
	}
	return KVDatabase{database: db}, nil
}

func (kvdb KVDatabase) Get(key string) (string, bool, error) {
	db := kvdb.database

	var value string
	err := db.Get(&value, db.Rebind(`SELECT store_value FROM kv_store WHERE store_key = ?`), key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to read key %s: %v", key, err)
	}
	return value, true, nil
}

func (kvdb KVDatabase) Set(key string, value string) error {
	db := kvdb.database

	sqlStatement := `
		INSERT INTO kv_store (store_key, store_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (store_key)
		DO UPDATE SET store_value = excluded.store_value, updated_at = excluded.updated_at`

	_, err := db.Exec(db.Rebind(sqlStatement), key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write key %s: %v", key, err)
	}
	return nil
}

func (kvdb KVDatabase) Delete(key string) error {
	db := kvdb.database

	_, err := db.Exec(db.Rebind(`DELETE FROM kv_store WHERE store_key = ?`), key)
	return err
}

// MemoryStore is an in-process KeyValueStore.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemoryStore) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
