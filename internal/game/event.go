package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

const (
	EventActive   = "active"
	EventInactive = "inactive"
)

// Event inspects the world after each turn and, when every trigger holds,
// applies Change to each of Affected. Description is the narrative line.
type Event struct {
	Info
	State    string      `json:"state"`
	Once     bool        `json:"once,omitempty"`
	Triggers []Condition `json:"triggers"`
	Affected Scope       `json:"affected_objects"`
	Change   Change      `json:"change"`
}

func (e *Event) Kind() Kind { return KindEvent }

// Active reports whether the event is evaluated each turn.
func (e *Event) Active() bool {
	return e.State == EventActive
}

// SetActive flips the activity flag.
func (e *Event) SetActive(active bool) {
	if active {
		e.State = EventActive
	} else {
		e.State = EventInactive
	}
}

// Validate satisfies storage.ValidatingSpec
func (e *Event) Validate() error {
	el := errors.NewErrorList()
	el.Add(e.Info.Validate())
	if e.State != EventActive && e.State != EventInactive {
		el.Add(fmt.Errorf("event state must be %q or %q", EventActive, EventInactive))
	}
	for i, c := range e.Triggers {
		if err := c.Validate(); err != nil {
			el.Add(fmt.Errorf("trigger %d: %w", i, err))
		}
	}
	if err := e.Affected.Validate(); err != nil {
		el.Add(fmt.Errorf("affected_objects: %w", err))
	}
	el.Add(e.Change.Validate())
	return el.Err()
}
