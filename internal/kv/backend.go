// ABOUTME: Persistence port for the key-value store.
// ABOUTME: Backends move raw bytes; namespacing and JSON live in Store.
package kv

import "errors"

// ErrNotFound is returned by Backend.Get when a key is absent.
var ErrNotFound = errors.New("key not found")

// ErrReadOnly is returned by writes against a backend opened read-only.
var ErrReadOnly = errors.New("cannot write: database is locked by another process")

// Backend is the raw storage medium a Store sits on. Keys are full
// (already prefixed) names; other applications may share the same Backend.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
