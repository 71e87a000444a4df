package events

import (
	"github.com/pixil98/go-adventure/internal/game"
)

// Condition types understood by the engine.
const (
	CondAtLocation  = "at_location"
	CondGodMode     = "god_mode"
	CondPlayerHas   = "player_has"
	CondInScope     = "in_scope"
	CondStateIs     = "state_is"
	CondPlayerState = "player_state"
)

var conditionParams = map[string][]string{
	CondAtLocation:  {"location"},
	CondGodMode:     nil,
	CondPlayerHas:   {"item"},
	CondInScope:     {"holder_kind", "holder", "kind", "id"},
	CondStateIs:     {"kind", "id", "state"},
	CondPlayerState: {"state"},
}

// State is the part of the session an event can inspect.
type State struct {
	Location string
	GodMode  bool
}

// evalCondition evaluates a single condition against the world. Unknown
// condition types never hold.
func evalCondition(c game.Condition, w *game.World, st State) bool {
	held := evalRaw(c, w, st)
	if c.Negate {
		return !held
	}
	return held
}

func evalRaw(c game.Condition, w *game.World, st State) bool {
	switch c.Type {
	case CondAtLocation:
		return st.Location == c.String("location")

	case CondGodMode:
		expected := true
		if _, ok := c.Params["value"]; ok {
			expected = c.Bool("value")
		}
		return st.GodMode == expected

	case CondPlayerHas:
		p := w.Player()
		return p != nil && p.Inventory.Contains(game.Ref(game.KindItem, c.String("item")))

	case CondInScope:
		holderKind, err := game.ParseKind(c.String("holder_kind"))
		if err != nil {
			return false
		}
		kind, err := game.ParseKind(c.String("kind"))
		if err != nil {
			return false
		}
		h, ok := w.Holder(game.Ref(holderKind, c.String("holder")))
		return ok && h.Contents().Contains(game.Ref(kind, c.String("id")))

	case CondStateIs:
		kind, err := game.ParseKind(c.String("kind"))
		if err != nil {
			return false
		}
		e, ok := w.Lookup(game.Ref(kind, c.String("id")))
		if !ok {
			return false
		}
		m, ok := game.AsInteractable(e)
		return ok && m.State == c.String("state")

	case CondPlayerState:
		p := w.Player()
		return p != nil && p.State == c.String("state")

	default:
		return false
	}
}

// evalAll returns true if every condition holds. An empty list holds.
func evalAll(conds []game.Condition, w *game.World, st State) bool {
	for _, c := range conds {
		if !evalCondition(c, w, st) {
			return false
		}
	}
	return true
}
