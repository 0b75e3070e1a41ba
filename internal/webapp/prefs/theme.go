// Package prefs holds local user preferences that survive restarts.
package prefs

import (
	"os"
	"strings"
	"sync"
)

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeStore persists the selected theme under a single key in a local file.
type ThemeStore struct {
	mu   sync.Mutex
	path string
}

// NewThemeStore stores the theme at path.
func NewThemeStore(path string) *ThemeStore {
	return &ThemeStore{path: path}
}

// Load returns the stored theme, defaulting to light when the file is
// missing or holds an unknown value.
func (s *ThemeStore) Load() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ThemeLight
	}
	if Theme(strings.TrimSpace(string(raw))) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Save writes the theme to disk.
func (s *ThemeStore) Save(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(t), 0o600)
}
