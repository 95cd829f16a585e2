// ABOUTME: Generic ordered collection of keyed records stored as one JSON list.
// ABOUTME: Workout, meal, and achievement repositories are built on it.
package storage

import (
	"strings"
	"time"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/harperreed/fittracker/internal/models"
)

// collection persists a newest-first list of records under one key. Every
// mutation rewrites the whole list.
type collection[T any] struct {
	store     *kv.Store
	clock     clock.Clock
	key       string
	id        func(*T) *string
	createdAt func(*T) *time.Time
}

// list returns the stored records, or an empty slice when absent or unreadable.
func (c *collection[T]) list() []T {
	var items []T
	if !c.store.Get(c.key, &items) || items == nil {
		return []T{}
	}
	return items
}

func (c *collection[T]) save(items []T) bool {
	return c.store.Set(c.key, items)
}

// add stamps rec with a fresh ID and creation time and puts it first.
func (c *collection[T]) add(rec T) (T, bool) {
	now := c.clock.Now()
	*c.id(&rec) = models.NewID(now)
	*c.createdAt(&rec) = now

	items := c.list()
	items = append([]T{rec}, items...)
	return rec, c.save(items)
}

// find resolves an exact ID or a unique ID prefix to an index.
func (c *collection[T]) find(items []T, idOrPrefix string) int {
	if idOrPrefix == "" {
		return -1
	}
	match := -1
	for i := range items {
		id := *c.id(&items[i])
		if id == idOrPrefix {
			return i
		}
		if strings.HasPrefix(strings.ToLower(id), strings.ToLower(idOrPrefix)) {
			if match >= 0 {
				return -1
			}
			match = i
		}
	}
	return match
}

func (c *collection[T]) get(idOrPrefix string) (T, bool) {
	items := c.list()
	if i := c.find(items, idOrPrefix); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) contains(id string) bool {
	for _, rec := range c.list() {
		if *c.id(&rec) == id {
			return true
		}
	}
	return false
}

// update applies fn to the matching record. ID and CreatedAt survive fn.
func (c *collection[T]) update(id string, fn func(*T)) bool {
	items := c.list()
	for i := range items {
		if *c.id(&items[i]) != id {
			continue
		}
		keepID, keepCreated := *c.id(&items[i]), *c.createdAt(&items[i])
		fn(&items[i])
		*c.id(&items[i]), *c.createdAt(&items[i]) = keepID, keepCreated
		return c.save(items)
	}
	return false
}

// remove drops the matching record. A missing ID leaves the list untouched
// and still succeeds.
func (c *collection[T]) remove(id string) bool {
	items := c.list()
	out := make([]T, 0, len(items))
	for _, rec := range items {
		if *c.id(&rec) != id {
			out = append(out, rec)
		}
	}
	if len(out) == len(items) {
		return true
	}
	return c.save(out)
}

// between returns records created within [start, end], keeping list order.
func (c *collection[T]) between(start, end time.Time) []T {
	out := []T{}
	for _, rec := range c.list() {
		at := *c.createdAt(&rec)
		if !at.Before(start) && !at.After(end) {
			out = append(out, rec)
		}
	}
	return out
}

// onDate returns records whose creation falls on day's calendar date in day's zone.
func (c *collection[T]) onDate(day time.Time) []T {
	out := []T{}
	for _, rec := range c.list() {
		if clock.SameDay(*c.createdAt(&rec), day, day.Location()) {
			out = append(out, rec)
		}
	}
	return out
}

func (c *collection[T]) today() []T {
	return c.onDate(c.clock.Now())
}

// appendImported adds records after the existing ones in their given order.
// Records keep their ID and creation time; missing ones are assigned.
// Records whose ID is already present, or that skip reports true for, are skipped.
func (c *collection[T]) appendImported(recs []T, skip func(T) bool) (added, skipped int, ok bool) {
	items := c.list()
	seen := make(map[string]bool, len(items))
	for i := range items {
		seen[*c.id(&items[i])] = true
	}

	now := c.clock.Now()
	for _, rec := range recs {
		if id := *c.id(&rec); id != "" && seen[id] {
			skipped++
			continue
		}
		if skip != nil && skip(rec) {
			skipped++
			continue
		}
		if *c.id(&rec) == "" {
			*c.id(&rec) = models.NewID(now)
		}
		if c.createdAt(&rec).IsZero() {
			*c.createdAt(&rec) = now
		}
		seen[*c.id(&rec)] = true
		items = append(items, rec)
		added++
	}
	if added == 0 {
		return 0, skipped, true
	}
	return added, skipped, c.save(items)
}
