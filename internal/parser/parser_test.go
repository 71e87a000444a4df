package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pixil98/go-adventure/internal/game"
)

func TestParser_Parse(t *testing.T) {
	p := New([]string{"rusty key", "door1", "Old Map", "key", "torch", "Map", "Look"})

	tests := map[string]struct {
		line string
		exp  []string
	}{
		"verb only":               {line: "look", exp: []string{"look"}},
		"lowercases":              {line: "LOOK Torch", exp: []string{"look", "torch"}},
		"groups multi-word name":  {line: "use rusty key door1", exp: []string{"use", "rusty key", "door1"}},
		"collapses spaces":        {line: "  take   rusty    key ", exp: []string{"take", "rusty key"}},
		"longest name wins":       {line: "drop rusty key", exp: []string{"drop", "rusty key"}},
		"shorter name alone":      {line: "drop key", exp: []string{"drop", "key"}},
		"keeps data spelling":     {line: "look old map", exp: []string{"look", "Old Map"}},
		"whole words only":        {line: "look keyring", exp: []string{"look", "keyring"}},
		"unknown words split":     {line: "take the big rock", exp: []string{"take", "the", "big", "rock"}},
		"verb named like an item": {line: "MAP", exp: []string{"map"}},
		"verb kept before a name": {line: "look look", exp: []string{"look", "Look"}},
		"name after verb":         {line: "take map", exp: []string{"take", "Map"}},
		"empty":                   {line: "   ", exp: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.exp, p.Parse(tt.line)); diff != "" {
				t.Errorf("tokens mismatch (-exp +got):\n%s", diff)
			}
		})
	}
}

func TestParser_NoVocabulary(t *testing.T) {
	p := New(nil)

	if diff := cmp.Diff([]string{"goto", "3"}, p.Parse("GOTO 3")); diff != "" {
		t.Errorf("tokens mismatch (-exp +got):\n%s", diff)
	}
}

func TestVocabulary(t *testing.T) {
	w := game.NewWorld()
	w.Add(&game.Location{Info: game.Info{Id: "1", Name: "Beach"}})
	w.Add(&game.Item{Info: game.Info{Id: "1", Name: "rusty key"}})
	w.Add(&game.Item{Info: game.Info{Id: "2", Name: "rusty key"}})
	w.Add(&game.Npc{Info: game.Info{Id: "1", Name: "hermit"}})
	w.Add(&game.Transition{Info: game.Info{Id: "1", Name: "door1"}})

	exp := []string{"door1", "hermit", "rusty key"}
	if diff := cmp.Diff(exp, Vocabulary(w)); diff != "" {
		t.Errorf("vocabulary mismatch (-exp +got):\n%s", diff)
	}
}
