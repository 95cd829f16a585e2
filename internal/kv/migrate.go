// ABOUTME: Data migration between key-value backends.
// ABOUTME: Copies every namespaced entry from a source to a destination backend.
package kv

import (
	"fmt"
	"os"
	"strings"
)

// MigrateSummary holds counts of migrated entries.
type MigrateSummary struct {
	Keys  int
	Bytes int
}

// Migrate copies all keys starting with prefix from src to dst. Existing
// destination entries with the same key are overwritten.
func Migrate(src, dst Backend, prefix string) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	keys, err := src.Keys()
	if err != nil {
		return nil, fmt.Errorf("list source keys: %w", err)
	}

	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		value, err := src.Get(key)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key, err)
		}
		if err := dst.Set(key, value); err != nil {
			return nil, fmt.Errorf("write %s: %w", key, err)
		}
		summary.Keys++
		summary.Bytes += len(value)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
