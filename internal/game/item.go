package game

import "github.com/pixil98/go-errors"

// Item is anything the player can carry. An item with a state_list (a lamp,
// a radio) can also be used.
type Item struct {
	Info
	StateMachine
}

func (i *Item) Kind() Kind { return KindItem }

// Validate satisfies storage.ValidatingSpec
func (i *Item) Validate() error {
	el := errors.NewErrorList()
	el.Add(i.Info.Validate())
	el.Add(i.StateMachine.Validate())
	return el.Err()
}
