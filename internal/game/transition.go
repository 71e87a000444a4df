package game

import (
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Transition connects the location it sits in to Target. Movement is
// refused while its state is blocking.
type Transition struct {
	Info
	StateMachine
	Target storage.SmartIdentifier[*Location] `json:"target"`
}

func (t *Transition) Kind() Kind { return KindTransition }

// Destination returns the address of the target location.
func (t *Transition) Destination() EntityRef {
	return Ref(KindLocation, t.Target.Get())
}

// Validate satisfies storage.ValidatingSpec
func (t *Transition) Validate() error {
	el := errors.NewErrorList()
	el.Add(t.Info.Validate())
	el.Add(t.StateMachine.Validate())
	el.Add(t.Target.Validate())
	return el.Err()
}

// Resolve resolves the target location reference.
func (t *Transition) Resolve(locs storage.Storer[*Location]) error {
	return t.Target.Resolve(locs)
}
