package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

type StorageConfig struct {
	// Path is the data root. Each entity kind lives in its own
	// sub-directory; scene texts live in texts/.
	Path string `json:"path"`
}

func (c *StorageConfig) validate() error {
	if c.Path == "" {
		return fmt.Errorf("storage: path is required")
	}
	info, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("storage: invalid path %q: %w", c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage: path %q is not a directory", c.Path)
	}
	return nil
}

func (c *StorageConfig) dir(name string) string {
	return filepath.Join(c.Path, name)
}

// BuildDictionary loads every entity store from the data root.
func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	locations, err := buildStore[*game.Location](c.dir("locations"))
	if err != nil {
		return nil, fmt.Errorf("creating location store: %w", err)
	}
	items, err := buildStore[*game.Item](c.dir("items"))
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	containers, err := buildStore[*game.Container](c.dir("containers"))
	if err != nil {
		return nil, fmt.Errorf("creating container store: %w", err)
	}
	npcs, err := buildStore[*game.Npc](c.dir("npcs"))
	if err != nil {
		return nil, fmt.Errorf("creating npc store: %w", err)
	}
	transitions, err := buildStore[*game.Transition](c.dir("transitions"))
	if err != nil {
		return nil, fmt.Errorf("creating transition store: %w", err)
	}
	journals, err := buildStore[*game.Journal](c.dir("journals"))
	if err != nil {
		return nil, fmt.Errorf("creating journal store: %w", err)
	}
	players, err := buildStore[*game.Player](c.dir("players"))
	if err != nil {
		return nil, fmt.Errorf("creating player store: %w", err)
	}
	events, err := buildStore[*game.Event](c.dir("events"))
	if err != nil {
		return nil, fmt.Errorf("creating event store: %w", err)
	}

	return &game.Dictionary{
		Locations:   locations,
		Items:       items,
		Containers:  containers,
		Npcs:        npcs,
		Transitions: transitions,
		Journals:    journals,
		Players:     players,
		Events:      events,
	}, nil
}

// BuildCommands loads the command overrides. Without a commands directory
// only the built-in verbs exist.
func (c *StorageConfig) BuildCommands() (storage.Storer[*commands.Command], error) {
	return buildStore[*commands.Command](c.dir("commands"))
}

func (c *StorageConfig) BuildTexts() (*storage.TextStore, error) {
	return storage.NewTextStore(c.dir("texts"))
}

// buildStore loads the assets under path. A missing directory is an empty
// store.
func buildStore[T storage.ValidatingSpec](path string) (storage.Storer[T], error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return storage.NewMemoryStore[T](nil), nil
	}
	return storage.NewFileStore[T](path)
}
