package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
)

// Entry is one file a generator intends to write.
type Entry struct {
	Path    string
	Content string
}

// Manifest is an ordered, path-keyed set of entries.
type Manifest struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{index: make(map[string]int)}
}

// Add records content for p. Adding a path twice keeps its original
// position but replaces the content.
func (m *Manifest) Add(p, content string) {
	p = path.Clean(p)
	if i, ok := m.index[p]; ok {
		m.entries[i].Content = content
		return
	}
	m.index[p] = len(m.entries)
	m.entries = append(m.entries, Entry{Path: p, Content: content})
}

// AddJSON encodes v as indented JSON with a trailing newline.
func (m *Manifest) AddJSON(p string, v any) error {
	data, err := encodeJSON(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", p, err)
	}
	m.Add(p, string(data))
	return nil
}

// Get returns the current content for p.
func (m *Manifest) Get(p string) (string, bool) {
	i, ok := m.index[path.Clean(p)]
	if !ok {
		return "", false
	}
	return m.entries[i].Content, true
}

// Has reports whether p is in the manifest.
func (m *Manifest) Has(p string) bool {
	_, ok := m.index[path.Clean(p)]
	return ok
}

// Entries returns the entries in insertion order.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Paths lists the entry paths in insertion order.
func (m *Manifest) Paths() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Path
	}
	return out
}

// Len returns the number of distinct paths.
func (m *Manifest) Len() int { return len(m.entries) }

// encodeJSON marshals v the way npm writes package.json: two-space indent,
// no HTML escaping and a trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
