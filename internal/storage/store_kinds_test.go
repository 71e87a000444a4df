package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

func writeRaw(t *testing.T, dir, id, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, id+".json"), []byte(body), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func TestFileStore_Container(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "crate", `{
		"version": 1,
		"id": "crate",
		"spec": {
			"name": "crate",
			"description": "A wooden crate.",
			"state": "nailed shut",
			"state_list": ["nailed shut", "open"],
			"state_descriptions": {"open": "The lid pops off."},
			"blocking_states": ["nailed shut"],
			"key_info": {"crowbar": "open"},
			"inventory": [{"kind": "item", "id": "rope"}]
		}
	}`)

	store, err := storage.NewFileStore[*game.Container](dir)
	if err != nil {
		t.Fatalf("loading containers: %v", err)
	}

	c := store.Get("crate")
	if c == nil {
		t.Fatalf("crate not loaded, keys %v", store.Keys())
	}
	testutil.AssertEqual(t, "id", c.Id, "crate")
	testutil.AssertEqual(t, "name", c.Name, "crate")
	testutil.AssertEqual(t, "sealed", c.Sealed(), true)
	if diff := cmp.Diff(game.Scope{game.Ref(game.KindItem, "rope")}, c.Inventory); diff != "" {
		t.Errorf("inventory mismatch (-exp +got):\n%s", diff)
	}

	if err := c.Unlock("crowbar"); err != nil {
		t.Fatalf("unlocking crate: %v", err)
	}
	testutil.AssertEqual(t, "state", c.State, "open")
	testutil.AssertEqual(t, "opened", c.Sealed(), false)
	testutil.AssertEqual(t, "description", c.StateMachine.Description(), "The lid pops off.")
}

func TestFileStore_Transition(t *testing.T) {
	tests := map[string]struct {
		target     string
		expDest    game.EntityRef
		expLoadErr string
		expErr     string
	}{
		"resolves target": {
			target:  `"2"`,
			expDest: game.Ref(game.KindLocation, "2"),
		},
		"unknown target": {
			target:  `"9"`,
			expDest: game.Ref(game.KindLocation, "9"),
			expErr:  `Location "9" not found`,
		},
		"missing target": {
			target:     `""`,
			expLoadErr: "Location identifier is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			locDir := t.TempDir()
			writeRaw(t, locDir, "2", `{"version": 1, "id": "2", "spec": {"name": "Cliff"}}`)
			locs, err := storage.NewFileStore[*game.Location](locDir)
			if err != nil {
				t.Fatalf("loading locations: %v", err)
			}

			dir := t.TempDir()
			writeRaw(t, dir, "path", `{
				"version": 1,
				"id": "path",
				"spec": {"name": "cliff path", "target": `+tt.target+`}
			}`)

			store, err := storage.NewFileStore[*game.Transition](dir)
			if tt.expLoadErr != "" {
				testutil.AssertErrorContains(t, err, tt.expLoadErr)
				return
			}
			if err != nil {
				t.Fatalf("loading transitions: %v", err)
			}

			tr := store.Get("path")
			testutil.AssertEqual(t, "destination", tr.Destination(), tt.expDest)

			err = tr.Resolve(locs)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("resolving target: %v", err)
			}
			testutil.AssertEqual(t, "resolved", tr.Target.Id().Name, "Cliff")
		})
	}
}
