// Package events evaluates the data-defined world events after each turn.
package events

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pixil98/go-adventure/internal/game"
	errlist "github.com/pixil98/go-errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrBadRange     = errors.New("invalid event range")
)

// Effect is what one event did this turn.
type Effect struct {
	Fired   bool
	Text    string
	Outcome Outcome
}

// Tick is what every active event did this turn, in evaluation order.
type Tick struct {
	Lines   []string
	Outcome Outcome
}

// Engine evaluates events against one World.
type Engine struct {
	world *game.World
	log   logrus.FieldLogger
}

// NewEngine creates an Engine for w.
func NewEngine(w *game.World, log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{world: w, log: log}
}

// Process evaluates ev and, if it is active and every trigger holds,
// applies its change. The event's description is the narrative text.
func (e *Engine) Process(ev *game.Event, st State) (Effect, error) {
	if !ev.Active() || !evalAll(ev.Triggers, e.world, st) {
		return Effect{}, nil
	}

	outcome, err := applyChange(ev.Change, ev.Affected, e.world)
	if err != nil {
		err = fmt.Errorf("event %s: %w", ev.Id, err)
	}
	if ev.Once {
		ev.SetActive(false)
	}

	e.log.WithFields(logrus.Fields{
		"event":   ev.Id,
		"change":  ev.Change.Type,
		"outcome": outcome,
	}).Info("event fired")

	return Effect{Fired: true, Text: ev.Description, Outcome: outcome}, err
}

// Run processes every event in id order. Later events see the changes of
// earlier ones. The first ending outcome wins; the remaining events still
// run.
func (e *Engine) Run(st State) (*Tick, error) {
	tick := &Tick{}
	el := errlist.NewErrorList()

	for _, id := range e.world.EventIds() {
		eff, err := e.Process(e.world.Events[id], st)
		el.Add(err)
		if !eff.Fired {
			continue
		}
		if eff.Text != "" {
			tick.Lines = append(tick.Lines, eff.Text)
		}
		if tick.Outcome == OutcomeNone {
			tick.Outcome = eff.Outcome
		}
	}

	return tick, el.Err()
}

// SetActive enables or disables events. Two integer ids select the
// inclusive range between them, skipping ids with no event; a single id
// selects that event. Returns the ids changed.
func (e *Engine) SetActive(active bool, ids ...string) ([]string, error) {
	switch len(ids) {
	case 1:
		ev, ok := e.world.Events[ids[0]]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, ids[0])
		}
		ev.SetActive(active)
		e.logToggle(active, ids)
		return ids, nil

	case 2:
		start, err1 := strconv.Atoi(ids[0])
		end, err2 := strconv.Atoi(ids[1])
		if err1 != nil || err2 != nil || start > end {
			return nil, fmt.Errorf("%w: %s %s", ErrBadRange, ids[0], ids[1])
		}
		var changed []string
		for _, id := range e.world.EventIds() {
			n, err := strconv.Atoi(id)
			if err != nil || strconv.Itoa(n) != id || n < start || n > end {
				continue
			}
			e.world.Events[id].SetActive(active)
			changed = append(changed, id)
		}
		e.logToggle(active, changed)
		return changed, nil

	default:
		return nil, fmt.Errorf("%w: expected one id or two", ErrBadRange)
	}
}

func (e *Engine) logToggle(active bool, ids []string) {
	e.log.WithFields(logrus.Fields{
		"active": active,
		"events": ids,
	}).Info("events toggled")
}

// Check verifies that every event uses known condition and change types
// with their required params.
func Check(w *game.World) error {
	el := errlist.NewErrorList()
	for _, id := range w.EventIds() {
		ev := w.Events[id]
		for i, c := range ev.Triggers {
			req, ok := conditionParams[c.Type]
			if !ok {
				el.Add(fmt.Errorf("event %s trigger %d: unknown condition type %q", id, i, c.Type))
				continue
			}
			el.Add(requireParams(fmt.Sprintf("event %s trigger %d", id, i), c.Params, req))
		}

		req, ok := changeParams[ev.Change.Type]
		if !ok {
			el.Add(fmt.Errorf("event %s: unknown change type %q", id, ev.Change.Type))
			continue
		}
		el.Add(requireParams(fmt.Sprintf("event %s change", id), ev.Change.Params, req))
		if ev.Change.Type == ChangeEnd {
			if _, err := parseOutcome(ev.Change.String("outcome")); err != nil {
				el.Add(fmt.Errorf("event %s change: %w", id, err))
			}
		}
	}
	return el.Err()
}

func requireParams(where string, params map[string]any, required []string) error {
	el := errlist.NewErrorList()
	for _, name := range required {
		if _, ok := params[name]; !ok {
			el.Add(fmt.Errorf("%s: param %q is required", where, name))
		}
	}
	return el.Err()
}
