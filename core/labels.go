// SPDX-License-Identifier: MIT
// File: labels.go
// Role: Bidirectional mapping between external string identifiers and dense vertex indices.
// Determinism:
//   - Indices are assigned in first-seen order.

package core

import "sync"

// Labels maps external node identifiers onto dense vertex indices.
// The zero value is ready to use and safe for concurrent use.
type Labels struct {
	mu    sync.RWMutex
	index map[string]int
	names []string
}

// NewLabels returns a Labels table pre-populated with names in order.
// Duplicate names keep their first index.
func NewLabels(names ...string) *Labels {
	l := &Labels{}
	for _, name := range names {
		l.Index(name)
	}

	return l
}

// Index returns the vertex index of name, assigning the next free index on first sight.
func (l *Labels) Index(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if id, ok := l.index[name]; ok {
		return id
	}
	id := len(l.names)
	l.index[name] = id
	l.names = append(l.names, name)

	return id
}

// Lookup returns the index of name without assigning one.
func (l *Labels) Lookup(name string) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.index[name]

	return id, ok
}

// Name returns the identifier of vertex id, or "" when id is unknown.
func (l *Labels) Name(id int) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if id < 0 || id >= len(l.names) {
		return ""
	}

	return l.names[id]
}

// Names returns the identifiers of ids in order.
func (l *Labels) Names(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = l.Name(id)
	}

	return out
}

// Len returns the number of known identifiers.
func (l *Labels) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.names)
}
