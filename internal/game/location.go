package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Location is a place the player can stand in. Entities lists what is on
// the ground, in data-file order.
type Location struct {
	Info
	Entities Scope `json:"entities"`
}

func (l *Location) Kind() Kind { return KindLocation }

func (l *Location) Contents() *Scope { return &l.Entities }

// Validate satisfies storage.ValidatingSpec
func (l *Location) Validate() error {
	el := errors.NewErrorList()
	el.Add(l.Info.Validate())
	if err := l.Entities.Validate(); err != nil {
		el.Add(fmt.Errorf("entities: %w", err))
	}
	return el.Err()
}
