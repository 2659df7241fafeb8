// Package enrichment attaches optional attributes to extracted records
// without touching the records themselves.
//
// Attributes live in a Table keyed by record identity. Reports read them
// next to the record; extraction never reads or writes them.
package enrichment

import (
	"sort"
	"sync"

	"github.com/fyrsmithlabs/coinscan/internal/record"
)

// Attributes are free-form name/value pairs for one record.
type Attributes map[string]string

// Table is a concurrent side-table of Attributes keyed by record.Key.
type Table struct {
	mu   sync.RWMutex
	rows map[record.Key]Attributes
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{rows: make(map[record.Key]Attributes)}
}

// Set stores one attribute for the record identified by k.
func (t *Table) Set(k record.Key, name, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	attrs, ok := t.rows[k]
	if !ok {
		attrs = make(Attributes)
		t.rows[k] = attrs
	}
	attrs[name] = value
}

// Get returns a copy of the attributes stored for k.
func (t *Table) Get(k record.Key) (Attributes, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	attrs, ok := t.rows[k]
	if !ok {
		return nil, false
	}
	out := make(Attributes, len(attrs))
	for name, v := range attrs {
		out[name] = v
	}
	return out, true
}

// Delete removes every attribute stored for k.
func (t *Table) Delete(k record.Key) {
	t.mu.Lock()
	delete(t.rows, k)
	t.mu.Unlock()
}

// Len returns the number of records with at least one attribute.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Names returns the sorted union of attribute names, which reports use as
// extra columns.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, attrs := range t.rows {
		for name := range attrs {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
