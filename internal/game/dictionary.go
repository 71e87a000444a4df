package game

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Dictionary holds the asset stores for every entity kind. Build turns them
// into a World once every cross reference checks out.
type Dictionary struct {
	Locations   storage.Storer[*Location]
	Items       storage.Storer[*Item]
	Containers  storage.Storer[*Container]
	Npcs        storage.Storer[*Npc]
	Transitions storage.Storer[*Transition]
	Journals    storage.Storer[*Journal]
	Players     storage.Storer[*Player]
	Events      storage.Storer[*Event]
}

// Resolve resolves foreign key references between stores.
func (d *Dictionary) Resolve() error {
	el := errors.NewErrorList()
	for _, id := range d.Transitions.Keys() {
		if err := d.Transitions.Get(id).Resolve(d.Locations); err != nil {
			el.Add(fmt.Errorf("transition %s: %w", id, err))
		}
	}
	return el.Err()
}

// Build resolves references, assembles a World and checks that every scope
// entry names an existing entity.
func (d *Dictionary) Build() (*World, error) {
	if err := d.Resolve(); err != nil {
		return nil, err
	}

	w := NewWorld()
	addAll(w, d.Locations)
	addAll(w, d.Items)
	addAll(w, d.Containers)
	addAll(w, d.Npcs)
	addAll(w, d.Transitions)
	addAll(w, d.Journals)
	addAll(w, d.Players)
	addAll(w, d.Events)

	if len(w.Players) == 0 {
		return nil, fmt.Errorf("at least one player is required")
	}
	if len(w.Locations) == 0 {
		return nil, fmt.Errorf("at least one location is required")
	}

	if err := w.Check(); err != nil {
		return nil, err
	}
	return w, nil
}

func addAll[T interface {
	Entity
	storage.ValidatingSpec
}](w *World, st storage.Storer[T]) {
	if st == nil {
		return
	}
	for _, id := range st.Keys() {
		w.Add(st.Get(id))
	}
}

// Check verifies that every reference held by the world resolves and that
// no carryable entity sits in more than one scope.
func (w *World) Check() error {
	el := errors.NewErrorList()
	seen := map[EntityRef]string{}

	checkScope := func(owner string, s Scope) {
		for _, ref := range s {
			if _, ok := w.Lookup(ref); !ok {
				el.Add(fmt.Errorf("%s: %w %s", owner, ErrUnknownEntity, ref))
				continue
			}
			if ref.Kind != KindItem && ref.Kind != KindContainer {
				continue
			}
			if prev, ok := seen[ref]; ok {
				el.Add(fmt.Errorf("%s: %s already held by %s", owner, ref, prev))
				continue
			}
			seen[ref] = owner
		}
	}

	for _, id := range SortIds(w.Locations) {
		checkScope(Ref(KindLocation, id).String(), w.Locations[id].Entities)
	}
	for _, id := range SortIds(w.Containers) {
		checkScope(Ref(KindContainer, id).String(), w.Containers[id].Inventory)
	}
	for _, id := range SortIds(w.Players) {
		p := w.Players[id]
		checkScope(Ref(KindPlayer, id).String(), p.Inventory)
		if p.Location != "" && w.Location(p.Location) == nil {
			el.Add(fmt.Errorf("player %s: %w location %q", id, ErrUnknownEntity, p.Location))
		}
	}
	for _, id := range SortIds(w.Transitions) {
		if w.Location(w.Transitions[id].Target.Get()) == nil {
			el.Add(fmt.Errorf("transition %s: %w target %q", id, ErrUnknownEntity, w.Transitions[id].Target.Get()))
		}
	}
	for _, id := range SortIds(w.Events) {
		for _, ref := range w.Events[id].Affected {
			if _, ok := w.Lookup(ref); !ok {
				el.Add(fmt.Errorf("event %s: %w %s", id, ErrUnknownEntity, ref))
			}
		}
	}

	return el.Err()
}
