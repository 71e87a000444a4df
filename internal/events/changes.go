package events

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-errors"
)

// Change types understood by the engine.
const (
	ChangeSetState    = "set_state"
	ChangeCycle       = "cycle"
	ChangeMove        = "move"
	ChangePlayerState = "player_state"
	ChangeEnd         = "end"
	ChangeMessage     = "message"
)

var changeParams = map[string][]string{
	ChangeSetState:    {"state"},
	ChangeCycle:       nil,
	ChangeMove:        {"to_kind", "to"},
	ChangePlayerState: {"state"},
	ChangeEnd:         {"outcome"},
	ChangeMessage:     nil,
}

// Outcome reports whether a change ended the game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

func parseOutcome(s string) (Outcome, error) {
	switch s {
	case "victory":
		return OutcomeVictory, nil
	case "defeat":
		return OutcomeDefeat, nil
	default:
		return OutcomeNone, fmt.Errorf("unknown outcome %q", s)
	}
}

// applyChange applies ch to every affected object. Objects that cannot take
// the change are reported and skipped; the rest are still changed.
func applyChange(ch game.Change, affected game.Scope, w *game.World) (Outcome, error) {
	switch ch.Type {
	case ChangePlayerState:
		p := w.Player()
		if p == nil {
			return OutcomeNone, fmt.Errorf("no player")
		}
		p.State = ch.String("state")
		return OutcomeNone, nil

	case ChangeEnd:
		return parseOutcome(ch.String("outcome"))

	case ChangeMessage:
		return OutcomeNone, nil
	}

	el := errors.NewErrorList()
	for _, ref := range affected {
		if err := applyTo(ch, ref, w); err != nil {
			el.Add(fmt.Errorf("%s: %w", ref, err))
		}
	}
	return OutcomeNone, el.Err()
}

func applyTo(ch game.Change, ref game.EntityRef, w *game.World) error {
	switch ch.Type {
	case ChangeSetState:
		m, err := machineOf(ref, w)
		if err != nil {
			return err
		}
		return m.Set(ch.String("state"))

	case ChangeCycle:
		m, err := machineOf(ref, w)
		if err != nil {
			return err
		}
		return m.Set(m.Next())

	case ChangeMove:
		kind, err := game.ParseKind(ch.String("to_kind"))
		if err != nil {
			return err
		}
		to, ok := w.Holder(game.Ref(kind, ch.String("to")))
		if !ok {
			return fmt.Errorf("%w: holder %s %q", game.ErrNotHolder, kind, ch.String("to"))
		}
		from, ok := w.Owner(ref)
		if !ok {
			return fmt.Errorf("%w: not held anywhere", game.ErrUnknownEntity)
		}
		w.Move(ref, from, to)
		return nil

	default:
		return fmt.Errorf("unknown change type %q", ch.Type)
	}
}

func machineOf(ref game.EntityRef, w *game.World) (*game.StateMachine, error) {
	e, ok := w.Lookup(ref)
	if !ok {
		return nil, game.ErrUnknownEntity
	}
	m, ok := game.AsInteractable(e)
	if !ok {
		return nil, game.ErrNotInteractable
	}
	return m, nil
}
