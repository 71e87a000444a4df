package commands

import (
	"context"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

var (
	torch  = game.Ref(game.KindItem, "torch")
	key    = game.Ref(game.KindItem, "key")
	coin   = game.Ref(game.KindItem, "coin")
	lampR  = game.Ref(game.KindItem, "lamp")
	rope   = game.Ref(game.KindItem, "rope")
	gem    = game.Ref(game.KindItem, "gem")
	chest  = game.Ref(game.KindContainer, "chest")
	crate  = game.Ref(game.KindContainer, "crate")
	pouch  = game.Ref(game.KindContainer, "pouch")
	hermit = game.Ref(game.KindNpc, "hermit")
	logR   = game.Ref(game.KindJournal, "log")
	door1  = game.Ref(game.KindTransition, "door1")
	path   = game.Ref(game.KindTransition, "path")
)

// newTestWorld builds a beach with a locked door, an open path, a chest, a
// nailed crate, a hermit, a journal and a lamp. The player carries a rusty
// key and a pouch holding a gem.
func newTestWorld() *game.World {
	w := game.NewWorld()
	w.Add(&game.Location{
		Info:     game.Info{Id: "1", Name: "Beach", Description: "Waves lap at the sand."},
		Entities: game.Scope{torch, door1, chest, hermit, logR, lampR, crate, path},
	})
	w.Add(&game.Location{Info: game.Info{Id: "2", Name: "Cave", Description: "It is dark."}})

	w.Add(&game.Item{Info: game.Info{Id: "torch", Name: "torch", Description: "A sputtering torch."}})
	w.Add(&game.Item{Info: game.Info{Id: "key", Name: "rusty key", Description: "Orange with age."}})
	w.Add(&game.Item{Info: game.Info{Id: "coin", Name: "coin", Description: "A gold doubloon."}})
	w.Add(&game.Item{Info: game.Info{Id: "rope", Name: "rope", Description: "Frayed hemp."}})
	w.Add(&game.Item{Info: game.Info{Id: "gem", Name: "gem", Description: "It glitters."}})
	w.Add(&game.Item{
		Info: game.Info{Id: "lamp", Name: "lamp", Description: "A brass lamp."},
		StateMachine: game.StateMachine{
			State:     "off",
			StateList: []string{"off", "on"},
			StateDescriptions: map[string]string{
				"off": "The lamp goes dark.",
				"on":  "The lamp glows warmly.",
			},
		},
	})

	w.Add(&game.Container{
		Info:      game.Info{Id: "chest", Name: "chest", Description: "An old sea chest."},
		Inventory: game.Scope{coin},
	})
	w.Add(&game.Container{
		Info: game.Info{Id: "crate", Name: "crate", Description: "A wooden crate."},
		StateMachine: game.StateMachine{
			State:          "nailed shut",
			StateList:      []string{"nailed shut", "open"},
			BlockingStates: []string{"nailed shut"},
			KeyInfo:        map[string]string{"crowbar": "open"},
		},
		Inventory: game.Scope{rope},
	})
	w.Add(&game.Container{
		Info:      game.Info{Id: "pouch", Name: "pouch", Description: "A leather pouch."},
		Inventory: game.Scope{gem},
	})

	w.Add(&game.Npc{Info: game.Info{Id: "hermit", Name: "hermit"}, Dialogue: "Leave me be."})
	w.Add(&game.Journal{Info: game.Info{Id: "log", Name: "journal"}, Story: "The ship sank.", Dialogue: "Day 1: rain."})

	w.Add(&game.Transition{
		Info: game.Info{Id: "door1", Name: "door1", Description: "A heavy door."},
		StateMachine: game.StateMachine{
			State:     "locked",
			StateList: []string{"locked", "unlocked"},
			StateDescriptions: map[string]string{
				"locked":   "The door is locked.",
				"unlocked": "The lock clicks open.",
			},
			BlockingStates: []string{"locked"},
			KeyInfo:        map[string]string{"rusty key": "unlock"},
		},
		Target: storage.NewSmartIdentifier[*game.Location]("2"),
	})
	w.Add(&game.Transition{
		Info:   game.Info{Id: "path", Name: "path"},
		Target: storage.NewSmartIdentifier[*game.Location]("2"),
	})

	w.Add(&game.Player{
		Info:      game.Info{Id: "1", Name: "you"},
		State:     "Healthy",
		Inventory: game.Scope{key, pouch},
	})
	return w
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h := NewHandler(storage.NewMemoryStore(map[string]*Command{}))
	if err := h.CompileAll(); err != nil {
		t.Fatalf("compiling commands: %v", err)
	}
	return h
}

// exec runs one verb in the beach and returns the result text or the
// user-facing error text.
func exec(t *testing.T, h *Handler, w *game.World, verb string, args ...string) (*Result, error) {
	t.Helper()
	return h.Exec(context.Background(), w, w.Location("1"), verb, args...)
}
