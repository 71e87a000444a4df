package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Player is the adventurer. State is a free-text status label shown on the
// status line.
type Player struct {
	Info
	State     string `json:"state"`
	Location  string `json:"location,omitempty"`
	Inventory Scope  `json:"inventory"`
}

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) Contents() *Scope { return &p.Inventory }

// Validate satisfies storage.ValidatingSpec
func (p *Player) Validate() error {
	el := errors.NewErrorList()
	el.Add(p.Info.Validate())
	if err := p.Inventory.Validate(); err != nil {
		el.Add(fmt.Errorf("inventory: %w", err))
	}
	return el.Err()
}
