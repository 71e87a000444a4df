package game

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

// World is the kind-partitioned store of every entity in one game. It
// holds no game logic; a session owns exactly one World and never shares
// it between concurrent turns.
type World struct {
	Locations   map[string]*Location
	Items       map[string]*Item
	Containers  map[string]*Container
	Npcs        map[string]*Npc
	Transitions map[string]*Transition
	Journals    map[string]*Journal
	Players     map[string]*Player
	Events      map[string]*Event

	playerId string
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		Locations:   map[string]*Location{},
		Items:       map[string]*Item{},
		Containers:  map[string]*Container{},
		Npcs:        map[string]*Npc{},
		Transitions: map[string]*Transition{},
		Journals:    map[string]*Journal{},
		Players:     map[string]*Player{},
		Events:      map[string]*Event{},
	}
}

// Add stores e under its kind and id, replacing any previous entity.
func (w *World) Add(e Entity) {
	id := e.Identity().Id
	switch v := e.(type) {
	case *Location:
		w.Locations[id] = v
	case *Item:
		w.Items[id] = v
	case *Container:
		w.Containers[id] = v
	case *Npc:
		w.Npcs[id] = v
	case *Transition:
		w.Transitions[id] = v
	case *Journal:
		w.Journals[id] = v
	case *Player:
		w.Players[id] = v
	case *Event:
		w.Events[id] = v
	}
}

// Lookup returns the entity addressed by ref.
func (w *World) Lookup(ref EntityRef) (Entity, bool) {
	switch ref.Kind {
	case KindLocation:
		return lookup(w.Locations, ref.Id)
	case KindItem:
		return lookup(w.Items, ref.Id)
	case KindContainer:
		return lookup(w.Containers, ref.Id)
	case KindNpc:
		return lookup(w.Npcs, ref.Id)
	case KindTransition:
		return lookup(w.Transitions, ref.Id)
	case KindJournal:
		return lookup(w.Journals, ref.Id)
	case KindPlayer:
		return lookup(w.Players, ref.Id)
	case KindEvent:
		return lookup(w.Events, ref.Id)
	default:
		return nil, false
	}
}

func lookup[T Entity](m map[string]T, id string) (Entity, bool) {
	e, ok := m[id]
	if !ok {
		return nil, false
	}
	return e, true
}

// Holder returns the entity addressed by ref when it has an inventory.
func (w *World) Holder(ref EntityRef) (Holder, bool) {
	e, ok := w.Lookup(ref)
	if !ok {
		return nil, false
	}
	h, ok := e.(Holder)
	return h, ok
}

// Location returns the location with the given id, or nil.
func (w *World) Location(id string) *Location {
	return w.Locations[id]
}

// SetPlayer selects which player record is the adventurer.
func (w *World) SetPlayer(id string) error {
	if _, ok := w.Players[id]; !ok {
		return fmt.Errorf("%w: player %q", ErrUnknownEntity, id)
	}
	w.playerId = id
	return nil
}

// Player returns the adventurer. Defaults to the lowest player id.
func (w *World) Player() *Player {
	if p, ok := w.Players[w.playerId]; ok {
		return p
	}
	ids := SortIds(w.Players)
	if len(ids) == 0 {
		return nil
	}
	w.playerId = ids[0]
	return w.Players[w.playerId]
}

// Owner finds the holder whose scope currently contains ref. The player is
// checked first, then containers and locations in id order.
func (w *World) Owner(ref EntityRef) (Holder, bool) {
	if p := w.Player(); p != nil && p.Inventory.Contains(ref) {
		return p, true
	}
	for _, id := range SortIds(w.Containers) {
		if c := w.Containers[id]; c.Inventory.Contains(ref) {
			return c, true
		}
	}
	for _, id := range SortIds(w.Locations) {
		if l := w.Locations[id]; l.Entities.Contains(ref) {
			return l, true
		}
	}
	return nil, false
}

// Move transfers ref from one holder's scope to another's. Both scopes are
// untouched unless ref is in from.
func (w *World) Move(ref EntityRef, from, to Holder) bool {
	return Transfer(ref, from.Contents(), to.Contents())
}

// EventIds returns event ids in evaluation order.
func (w *World) EventIds() []string {
	return SortIds(w.Events)
}

// SortIds returns the keys of m ordered numerically where both ids are
// integers, numbers before names, and lexically otherwise.
func SortIds[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, CompareIds)
	return ids
}

// CompareIds orders two ids, comparing integer ids by value.
func CompareIds(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
