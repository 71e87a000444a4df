package commands

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

type verbCase struct {
	args     []string
	setup    func(w *game.World)
	expText  string
	expErr   error
	expMsg   string
	expBeach game.Scope
	expPack  game.Scope
	check    func(t *testing.T, w *game.World)
}

func runVerbCases(t *testing.T, verb string, tests map[string]verbCase) {
	t.Helper()
	h := newTestHandler(t)

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			if tt.setup != nil {
				tt.setup(w)
			}

			res, err := exec(t, h, w, verb, tt.args...)
			switch {
			case tt.expErr != nil:
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("error = %v, expected kind %v", err, tt.expErr)
				}
				testutil.AssertEqual(t, "message", err.Error(), tt.expMsg)
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			default:
				testutil.AssertEqual(t, "text", res.Text, tt.expText)
			}

			if tt.expBeach != nil {
				if diff := cmp.Diff(tt.expBeach, w.Location("1").Entities); diff != "" {
					t.Errorf("beach mismatch (-exp +got):\n%s", diff)
				}
			}
			if tt.expPack != nil {
				if diff := cmp.Diff(tt.expPack, w.Player().Inventory); diff != "" {
					t.Errorf("inventory mismatch (-exp +got):\n%s", diff)
				}
			}
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}

func TestLook(t *testing.T) {
	runVerbCases(t, "look", map[string]verbCase{
		"no argument": {
			expText: "",
		},
		"item": {
			args:    []string{"torch"},
			expText: "A sputtering torch.",
		},
		"container lists inventory": {
			args:    []string{"chest"},
			expText: "An old sea chest.\n\tinventory:\n\t\tcoin",
		},
		"empty container is bare": {
			args:    []string{"chest"},
			setup:   func(w *game.World) { w.Containers["chest"].Inventory = game.Scope{} },
			expText: "An old sea chest.",
		},
		"sealed container hides inventory": {
			args:    []string{"crate"},
			expText: "A wooden crate.\n\tThe crate is nailed shut.",
		},
		"carried things are not here": {
			args:   []string{"rusty key"},
			expErr: ErrNotFound,
			expMsg: "You can't seem to find any rusty keys here, try using the help command.",
		},
		"not found": {
			args:   []string{"dragon"},
			expErr: ErrNotFound,
			expMsg: "You can't seem to find any dragons here, try using the help command.",
		},
	})
}

func TestTalk(t *testing.T) {
	runVerbCases(t, "talk", map[string]verbCase{
		"npc": {
			args:    []string{"hermit"},
			expText: "Leave me be.",
		},
		"journal": {
			args:    []string{"journal"},
			expText: "IMPORTANT:\n\tThe ship sank.\n\n Journal log:\n\tDay 1: rain.",
		},
		"not a speaker": {
			args:   []string{"torch"},
			expErr: ErrNotFound,
			expMsg: "You can't seem to find any torchs here, try using the help command.",
		},
		"no argument": {
			expErr: ErrInvalidCommand,
			expMsg: "Please specify who or what you want to talk to, type help to learn more about talking your native language.",
		},
	})
}

func TestMove(t *testing.T) {
	h := newTestHandler(t)

	tests := map[string]struct {
		args        []string
		setup       func(w *game.World)
		expRelocate *game.EntityRef
		expErr      error
		expMsg      string
	}{
		"open path": {
			args:        []string{"path"},
			expRelocate: &game.EntityRef{Kind: game.KindLocation, Id: "2"},
		},
		"blocked": {
			args:   []string{"door1"},
			expErr: ErrStateRejected,
			expMsg: "You can't go that way because the door1 is locked.",
		},
		"unblocked": {
			args:        []string{"door1"},
			setup:       func(w *game.World) { w.Transitions["door1"].State = "unlocked" },
			expRelocate: &game.EntityRef{Kind: game.KindLocation, Id: "2"},
		},
		"not a transition": {
			args:   []string{"chest"},
			expErr: ErrNotFound,
			expMsg: "You can't move to the chest, try using the help command.",
		},
		"no argument": {
			expErr: ErrInvalidCommand,
			expMsg: "Where do you want to go?",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			if tt.setup != nil {
				tt.setup(w)
			}

			res, err := exec(t, h, w, "move", tt.args...)
			if tt.expErr != nil {
				testutil.AssertEqual(t, "error kind", errors.Is(err, tt.expErr), true)
				testutil.AssertEqual(t, "message", err.Error(), tt.expMsg)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expRelocate, res.Relocate); diff != "" {
				t.Errorf("relocate mismatch (-exp +got):\n%s", diff)
			}
		})
	}
}

func TestTake(t *testing.T) {
	runVerbCases(t, "take", map[string]verbCase{
		"from the ground": {
			args:     []string{"torch"},
			expText:  "You pickup the torch.",
			expBeach: game.Scope{door1, chest, hermit, logR, lampR, crate, path},
			expPack:  game.Scope{key, pouch, torch},
		},
		"journals can be carried": {
			args:    []string{"journal"},
			expText: "You pickup the journal.",
			expPack: game.Scope{key, pouch, logR},
		},
		"transitions cannot": {
			args:     []string{"door1"},
			expErr:   ErrNotFound,
			expMsg:   "You can't pick up the door1.",
			expBeach: game.Scope{torch, door1, chest, hermit, logR, lampR, crate, path},
			expPack:  game.Scope{key, pouch},
		},
		"npcs cannot": {
			args:   []string{"hermit"},
			expErr: ErrNotFound,
			expMsg: "You can't pick up the hermit.",
		},
		"from a container": {
			args:    []string{"coin", "chest"},
			expText: "You take the coin from inside the chest.",
			expPack: game.Scope{key, pouch, coin},
			check: func(t *testing.T, w *game.World) {
				testutil.AssertEqual(t, "chest", len(w.Containers["chest"].Inventory), 0)
			},
		},
		"not in the container": {
			args:    []string{"torch", "chest"},
			expErr:  ErrNotFound,
			expMsg:  "You can't take the torch from the chest.",
			expPack: game.Scope{key, pouch},
		},
		"not a container": {
			args:   []string{"coin", "torch"},
			expErr: ErrTypeMismatch,
			expMsg: "Torch is not a container.",
		},
		"no such container": {
			args:   []string{"coin", "barrel"},
			expErr: ErrNotFound,
			expMsg: "You can't seem to find a barrel here.",
		},
		"sealed container": {
			args:   []string{"rope", "crate"},
			expErr: ErrStateRejected,
			expMsg: "The crate is nailed shut.",
			check: func(t *testing.T, w *game.World) {
				testutil.AssertEqual(t, "crate", len(w.Containers["crate"].Inventory), 1)
			},
		},
		"no argument": {
			expErr: ErrInvalidCommand,
			expMsg: "What do you want to take?",
		},
	})
}

func TestDrop(t *testing.T) {
	runVerbCases(t, "drop", map[string]verbCase{
		"on the ground": {
			args:     []string{"rusty key"},
			expText:  "You drop the rusty key on the ground.",
			expBeach: game.Scope{torch, door1, chest, hermit, logR, lampR, crate, path, key},
			expPack:  game.Scope{pouch},
		},
		"not carried": {
			args:     []string{"torch"},
			expErr:   ErrNotFound,
			expMsg:   "You don't have a torch.",
			expBeach: game.Scope{torch, door1, chest, hermit, logR, lampR, crate, path},
		},
		"into a container": {
			args:    []string{"rusty key", "chest"},
			expText: "You put the rusty key in the chest.",
			expPack: game.Scope{pouch},
			check: func(t *testing.T, w *game.World) {
				if diff := cmp.Diff(game.Scope{coin, key}, w.Containers["chest"].Inventory); diff != "" {
					t.Errorf("chest mismatch (-exp +got):\n%s", diff)
				}
			},
		},
		"into a non container": {
			args:    []string{"rusty key", "hermit"},
			expErr:  ErrTypeMismatch,
			expMsg:  "Hermit is not a container.",
			expPack: game.Scope{key, pouch},
		},
		"into a sealed container": {
			args:    []string{"rusty key", "crate"},
			expErr:  ErrStateRejected,
			expMsg:  "The crate is nailed shut.",
			expPack: game.Scope{key, pouch},
		},
		"not carried into container": {
			args:   []string{"torch", "chest"},
			expErr: ErrNotFound,
			expMsg: "You don't have a torch.",
		},
		"no such container": {
			args:   []string{"rusty key", "barrel"},
			expErr: ErrNotFound,
			expMsg: "You can't seem to find a barrel here.",
		},
	})
}

func TestInventory(t *testing.T) {
	runVerbCases(t, "inventory", map[string]verbCase{
		"list": {
			expText: "\ninventory:\n\trusty key\n\tpouch",
		},
		"empty": {
			setup:   func(w *game.World) { w.Player().Inventory = game.Scope{} },
			expText: "Your inventory is empty.",
		},
		"one item": {
			args:    []string{"rusty key"},
			expText: "rusty key: Orange with age.",
		},
		"carried container": {
			args:    []string{"pouch"},
			expText: "pouch: A leather pouch.\n\tinventory:\n\t\tgem",
		},
		"not carried": {
			args:   []string{"torch"},
			expErr: ErrNotFound,
			expMsg: "You don't have a torch.",
		},
		"inside a carried container": {
			args:    []string{"gem", "pouch"},
			expText: "gem: It glitters.",
			expPack: game.Scope{key, pouch},
		},
		"missing from carried container": {
			args:   []string{"coin", "pouch"},
			expErr: ErrNotFound,
			expMsg: "There is no coin in the pouch.",
		},
		"container not carried": {
			args:   []string{"coin", "chest"},
			expErr: ErrNotFound,
			expMsg: "You don't have a chest.",
		},
		"closed carried container hides contents": {
			args:    []string{"pouch"},
			setup:   tiePouch,
			expText: "pouch: A leather pouch.\n\tThe pouch is tied.",
		},
		"inside a closed carried container": {
			args:   []string{"gem", "pouch"},
			setup:  tiePouch,
			expErr: ErrStateRejected,
			expMsg: "The pouch is tied.",
		},
	})
}

func tiePouch(w *game.World) {
	w.Containers["pouch"].StateMachine = game.StateMachine{
		State:          "tied",
		StateList:      []string{"tied", "open"},
		BlockingStates: []string{"tied"},
	}
}

func TestUse(t *testing.T) {
	runVerbCases(t, "use", map[string]verbCase{
		"cycles an interactable": {
			args:    []string{"lamp"},
			expText: "The lamp glows warmly.",
			check: func(t *testing.T, w *game.World) {
				testutil.AssertEqual(t, "state", w.Items["lamp"].State, "on")
			},
		},
		"carried interactable": {
			args:    []string{"lamp"},
			setup:   func(w *game.World) { w.Move(lampR, w.Location("1"), w.Player()) },
			expText: "The lamp glows warmly.",
		},
		"not interactable": {
			args:   []string{"torch"},
			expErr: ErrNotFound,
			expMsg: "You can't use the torch.",
		},
		"key gated state refuses cycling": {
			args:   []string{"door1"},
			expErr: ErrStateRejected,
			expMsg: "The door1 is locked. You need something to open it.",
		},
		"unlock": {
			args:    []string{"rusty key", "door1"},
			expText: "You use the rusty key on the door1. The lock clicks open.",
			check: func(t *testing.T, w *game.World) {
				testutil.AssertEqual(t, "state", w.Transitions["door1"].State, "unlocked")
			},
		},
		"key on the ground works": {
			args: []string{"rusty key", "door1"},
			setup: func(w *game.World) {
				w.Move(key, w.Player(), w.Location("1"))
			},
			expText: "You use the rusty key on the door1. The lock clicks open.",
		},
		"no such key": {
			args:   []string{"crowbar", "crate"},
			expErr: ErrNotFound,
			expMsg: "You don't have a crowbar.",
		},
		"wrong key": {
			args:   []string{"rusty key", "crate"},
			expErr: ErrStateRejected,
			expMsg: "The rusty key doesn't fit the crate.",
			check: func(t *testing.T, w *game.World) {
				testutil.AssertEqual(t, "state", w.Containers["crate"].State, "nailed shut")
			},
		},
		"already unlocked": {
			args:   []string{"rusty key", "door1"},
			setup:  func(w *game.World) { w.Transitions["door1"].State = "unlocked" },
			expErr: ErrStateRejected,
			expMsg: "The door1 is already unlocked.",
		},
		"key must be an item": {
			args:   []string{"hermit", "crate"},
			expErr: ErrNotFound,
			expMsg: "You don't have a hermit.",
			check: func(t *testing.T, w *game.World) {
				testutil.AssertEqual(t, "state", w.Containers["crate"].State, "nailed shut")
			},
		},
		"key on something that cannot be used": {
			args:   []string{"rusty key", "torch"},
			expErr: ErrNotFound,
			expMsg: "You can't use the rusty key on the torch.",
		},
		"no argument": {
			expErr: ErrInvalidCommand,
			expMsg: "What do you want to use?",
		},
	})
}
