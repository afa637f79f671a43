// Package location holds the persisted navigation fragment together with a
// back/forward history of the fragments written to it.
package location

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultHistoryLimit caps the number of remembered fragments.
const DefaultHistoryLimit = 100

// Location is a fragment channel. Read returns the current entry and Write
// records a new one, dropping any forward history.
type Location struct {
	history []string
	index   int
	limit   int
	path    string
}

// New returns an empty location that is not backed by a file.
func New() *Location {
	return &Location{index: -1, limit: DefaultHistoryLimit}
}

// Open returns a location backed by the state file at path. A missing file
// yields an empty location that Save will create.
func Open(path string) (*Location, error) {
	l := New()
	l.path = path
	if path == "" {
		return l, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var sf stateFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	l.restore(sf)
	return l, nil
}

type stateFile struct {
	Fragment string   `yaml:"fragment"`
	History  []string `yaml:"history,omitempty"`
	Index    int      `yaml:"index"`
}

func (l *Location) restore(sf stateFile) {
	if len(sf.History) == 0 {
		if sf.Fragment != "" {
			l.history = []string{sf.Fragment}
			l.index = 0
		}
		return
	}
	l.history = append([]string(nil), sf.History...)
	l.index = sf.Index
	if l.index < 0 || l.index >= len(l.history) {
		l.index = len(l.history) - 1
	}
	l.trim()
}

// Path returns the backing state file, or "" when there is none.
func (l *Location) Path() string {
	return l.path
}

// Read returns the current fragment.
func (l *Location) Read() string {
	if l.index < 0 || l.index >= len(l.history) {
		return ""
	}
	return l.history[l.index]
}

// Write records s as the current fragment.
func (l *Location) Write(s string) {
	// Writing the neighbouring entry moves through history instead of
	// branching it.
	if l.index > 0 && l.history[l.index-1] == s {
		l.index--
		return
	}
	if l.index < len(l.history)-1 && l.history[l.index+1] == s {
		l.index++
		return
	}

	if l.index < len(l.history)-1 {
		l.history = l.history[:l.index+1]
	}
	if len(l.history) == 0 || l.history[len(l.history)-1] != s {
		l.history = append(l.history, s)
		l.index = len(l.history) - 1
		l.trim()
	}
}

func (l *Location) trim() {
	if l.limit <= 0 || len(l.history) <= l.limit {
		return
	}
	drop := len(l.history) - l.limit
	l.history = append([]string(nil), l.history[drop:]...)
	l.index -= drop
	if l.index < 0 {
		l.index = 0
	}
}

// Back moves to the previous fragment and returns it.
func (l *Location) Back() (string, bool) {
	if l.index <= 0 {
		return "", false
	}
	l.index--
	return l.history[l.index], true
}

// Forward moves to the next fragment and returns it.
func (l *Location) Forward() (string, bool) {
	if l.index >= len(l.history)-1 {
		return "", false
	}
	l.index++
	return l.history[l.index], true
}

// CanGoBack reports whether Back would move.
func (l *Location) CanGoBack() bool {
	return l.index > 0
}

// CanGoForward reports whether Forward would move.
func (l *Location) CanGoForward() bool {
	return l.index < len(l.history)-1
}

// History returns a copy of the remembered fragments, oldest first, and the
// index of the current one.
func (l *Location) History() ([]string, int) {
	return append([]string(nil), l.history...), l.index
}

// Save writes the location to its state file. It is a no-op when the
// location has no backing file.
func (l *Location) Save() error {
	if l.path == "" {
		return nil
	}
	data, err := yaml.Marshal(stateFile{
		Fragment: l.Read(),
		History:  l.history,
		Index:    l.index,
	})
	if err != nil {
		return fmt.Errorf("encoding state file: %w", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".svgdeck-state-*")
	if err != nil {
		return fmt.Errorf("creating state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
