// ABOUTME: Namespaced JSON key-value store over a Backend.
// ABOUTME: Failures are logged and reported as false/absent, never raised.
package kv

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPrefix namespaces every key this application writes.
const DefaultPrefix = "fittracker_"

// Store maps string keys to JSON values under a fixed prefix.
type Store struct {
	backend Backend
	prefix  string
	logger  *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides the namespace prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore wraps backend.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		prefix:  DefaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = DefaultLogger(os.Stderr)
	}
	return s
}

// DefaultLogger returns the warn-level logger stores use unless told otherwise.
func DefaultLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "fittracker",
		Level:  log.WarnLevel,
	})
}

// Backend returns the underlying persistence medium.
func (s *Store) Backend() Backend {
	return s.backend
}

// Prefix returns the namespace prefix.
func (s *Store) Prefix() string {
	return s.prefix
}

// Get decodes the value stored at key into dst. It returns false when the
// key is absent or the stored JSON cannot be decoded.
func (s *Store) Get(key string, dst any) bool {
	data, err := s.backend.Get(s.prefix + key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("get item from storage", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Error("decode stored value", "key", key, "err", err)
		return false
	}
	return true
}

// GetRaw returns the stored JSON at key, or nil if absent or not valid JSON.
func (s *Store) GetRaw(key string) json.RawMessage {
	data, err := s.backend.Get(s.prefix + key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("get item from storage", "key", key, "err", err)
		}
		return nil
	}
	if !json.Valid(data) {
		s.logger.Error("decode stored value", "key", key, "err", "invalid JSON")
		return nil
	}
	return json.RawMessage(data)
}

// Set encodes value as JSON and writes it to key.
func (s *Store) Set(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("encode value", "key", key, "err", err)
		return false
	}
	if err := s.backend.Set(s.prefix+key, data); err != nil {
		s.logger.Error("set item in storage", "key", key, "err", err)
		return false
	}
	return true
}

// Remove deletes key.
func (s *Store) Remove(key string) bool {
	if err := s.backend.Delete(s.prefix + key); err != nil {
		s.logger.Error("remove item from storage", "key", key, "err", err)
		return false
	}
	return true
}

// Exists reports whether key is present.
func (s *Store) Exists(key string) bool {
	_, err := s.backend.Get(s.prefix + key)
	return err == nil
}

// Clear removes every key under this store's prefix, leaving other data alone.
func (s *Store) Clear() bool {
	ok := true
	for _, key := range s.Keys() {
		if !s.Remove(key) {
			ok = false
		}
	}
	return ok
}

// Keys returns the namespaced keys with the prefix stripped, sorted.
func (s *Store) Keys() []string {
	all, err := s.backend.Keys()
	if err != nil {
		s.logger.Error("list storage keys", "err", err)
		return nil
	}
	var keys []string
	for _, k := range all {
		if strings.HasPrefix(k, s.prefix) {
			keys = append(keys, strings.TrimPrefix(k, s.prefix))
		}
	}
	sort.Strings(keys)
	return keys
}

// SizeInBytes sums the serialized length of every namespaced entry.
func (s *Store) SizeInBytes() int {
	total := 0
	for _, key := range s.Keys() {
		data, err := s.backend.Get(s.prefix + key)
		if err != nil {
			continue
		}
		total += len(data)
	}
	return total
}

// ExportAll snapshots every namespaced entry. Entries whose stored bytes are
// not valid JSON are skipped.
func (s *Store) ExportAll() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage)
	for _, key := range s.Keys() {
		if raw := s.GetRaw(key); raw != nil {
			out[key] = raw
		}
	}
	return out
}

// ImportAll writes every entry. It keeps going after a failed write and
// reports whether all writes succeeded.
func (s *Store) ImportAll(data map[string]json.RawMessage) bool {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ok := true
	for _, key := range keys {
		raw := data[key]
		if !json.Valid(raw) {
			s.logger.Error("import invalid value", "key", key)
			ok = false
			continue
		}
		if err := s.backend.Set(s.prefix+key, raw); err != nil {
			s.logger.Error("import item", "key", key, "err", err)
			ok = false
		}
	}
	return ok
}
