package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Container holds its own inventory. While its state is blocking (closed,
// locked) nothing can be taken out or put in.
type Container struct {
	Info
	StateMachine
	Inventory Scope `json:"inventory"`
}

func (c *Container) Kind() Kind { return KindContainer }

func (c *Container) Contents() *Scope { return &c.Inventory }

// Sealed reports whether the inventory is currently out of reach.
func (c *Container) Sealed() bool {
	return c.Blocking()
}

// Validate satisfies storage.ValidatingSpec
func (c *Container) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Info.Validate())
	el.Add(c.StateMachine.Validate())
	if err := c.Inventory.Validate(); err != nil {
		el.Add(fmt.Errorf("inventory: %w", err))
	}
	return el.Err()
}
