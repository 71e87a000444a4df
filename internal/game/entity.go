package game

import (
	"fmt"
	"strings"
)

// Info holds the properties every entity shares. The id is not part of the
// spec body; it is stamped from the asset envelope at load time.
type Info struct {
	Id          string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SetId satisfies the storage loader's id stamping.
func (i *Info) SetId(id string) {
	i.Id = id
}

// Identity returns the shared properties.
func (i *Info) Identity() *Info {
	return i
}

// Validate checks the shared properties. Called by each kind's Validate.
func (i *Info) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Entity is implemented by every kind stored in the World.
type Entity interface {
	Kind() Kind
	Identity() *Info
}

// Holder is an entity with an inventory scope: locations, containers and
// the player.
type Holder interface {
	Entity
	Contents() *Scope
}

// Interactable is an entity carrying a state machine. Having the method is
// not enough; see AsInteractable.
type Interactable interface {
	Entity
	Machine() *StateMachine
}

// Speaker is an entity the player can talk to.
type Speaker interface {
	Entity
	Speak() string
}

// Portal is an entity the player can move through.
type Portal interface {
	Interactable
	Destination() EntityRef
}

// AsInteractable returns the entity's state machine when it has at least
// one state.
func AsInteractable(e Entity) (*StateMachine, bool) {
	i, ok := e.(Interactable)
	if !ok {
		return nil, false
	}
	m := i.Machine()
	if m == nil || len(m.StateList) == 0 {
		return nil, false
	}
	return m, true
}

// AsContainer returns the entity's inventory when it is a container.
func AsContainer(e Entity) (*Container, bool) {
	c, ok := e.(*Container)
	return c, ok
}

// RefOf builds the world address of an entity.
func RefOf(e Entity) EntityRef {
	return EntityRef{Kind: e.Kind(), Id: e.Identity().Id}
}
