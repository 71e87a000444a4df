package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TextStore holds the plain-text scene bodies (title, opening, help, ...)
// keyed by file name without extension.
type TextStore struct {
	texts map[string]string
}

// NewTextStore reads every .txt file directly under path. A missing
// directory yields an empty store.
func NewTextStore(path string) (*TextStore, error) {
	s := &TextStore{texts: map[string]string{}}

	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading text dir %q: %w", path, err)
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(path, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		s.texts[strings.TrimSuffix(e.Name(), ".txt")] = strings.TrimRight(string(data), "\n")
	}

	return s, nil
}

// NewTextStoreFrom wraps texts built in code.
func NewTextStoreFrom(texts map[string]string) *TextStore {
	if texts == nil {
		texts = map[string]string{}
	}
	return &TextStore{texts: texts}
}

// Get returns the named text, or fallback when it was not provided.
func (s *TextStore) Get(name, fallback string) string {
	if t, ok := s.texts[name]; ok && t != "" {
		return t
	}
	return fallback
}
