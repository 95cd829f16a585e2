// ABOUTME: Charm KV Backend with automatic cloud sync after writes.
// ABOUTME: Data is E2E encrypted with the user's SSH key before upload.
package kv

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	charmkv "github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

const (
	// CharmDBName is the Charm KV database name.
	CharmDBName = "fittracker"
	// CharmHost is the Charm server used for sync.
	CharmHost = "charm.2389.dev"
)

// CharmBackend stores entries in a Charm KV database.
type CharmBackend struct {
	kv       *charmkv.KV
	autoSync bool
	mu       sync.RWMutex
}

// OpenCharm opens the Charm KV database and pulls remote data.
func OpenCharm() (*CharmBackend, error) {
	// Set server before opening KV
	if os.Getenv("CHARM_HOST") == "" {
		if err := os.Setenv("CHARM_HOST", CharmHost); err != nil {
			return nil, err
		}
	}

	db, err := charmkv.OpenWithDefaultsFallback(CharmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	c := &CharmBackend{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return c, nil
}

// IsReadOnly returns true if another process holds the database lock.
func (c *CharmBackend) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *CharmBackend) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// Sync synchronizes local state with Charm Cloud.
func (c *CharmBackend) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// ID returns the Charm user ID for the current account.
func (c *CharmBackend) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

func (c *CharmBackend) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		_ = c.kv.Sync()
	}
}

// Get reads key.
func (c *CharmBackend) Get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return val, nil
}

// Set writes key and syncs.
func (c *CharmBackend) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := c.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

// Delete removes key and syncs.
func (c *CharmBackend) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := c.kv.Delete([]byte(key)); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

// Keys lists every key in the database.
func (c *CharmBackend) Keys() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, string(k))
	}
	return keys, nil
}

// Close closes the KV database connection.
func (c *CharmBackend) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}
