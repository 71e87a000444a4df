package commands

import (
	"slices"

	"github.com/pixil98/go-adventure/internal/game"
)

// Filter narrows the entities a name may resolve to.
type Filter func(game.Entity) bool

// OfKind accepts only the listed kinds.
func OfKind(kinds ...game.Kind) Filter {
	return func(e game.Entity) bool {
		return slices.Contains(kinds, e.Kind())
	}
}

// NotKind rejects the listed kinds.
func NotKind(kinds ...game.Kind) Filter {
	return func(e game.Entity) bool {
		return !slices.Contains(kinds, e.Kind())
	}
}

// IsContainer accepts entities with container capability.
func IsContainer(e game.Entity) bool {
	_, ok := game.AsContainer(e)
	return ok
}

// IsInteractable accepts entities carrying at least one state.
func IsInteractable(e game.Entity) bool {
	_, ok := game.AsInteractable(e)
	return ok
}

// IsSpeaker accepts entities the player can talk to.
func IsSpeaker(e game.Entity) bool {
	_, ok := e.(game.Speaker)
	return ok
}

// IsPortal accepts entities the player can move through.
func IsPortal(e game.Entity) bool {
	_, ok := e.(game.Portal)
	return ok
}

// Carryable accepts what can be picked up off the ground.
var Carryable = NotKind(game.KindTransition, game.KindNpc, game.KindLocation, game.KindPlayer, game.KindEvent)

// Resolve returns the first entity in scope whose name is exactly name and
// which passes every filter. Refs that do not resolve are skipped.
func Resolve(w *game.World, scope game.Scope, name string, filters ...Filter) (game.EntityRef, game.Entity, bool) {
	for _, ref := range scope {
		e, ok := w.Lookup(ref)
		if !ok || e.Identity().Name != name {
			continue
		}
		if !passes(e, filters) {
			continue
		}
		return ref, e, true
	}
	return game.EntityRef{}, nil, false
}

func passes(e game.Entity, filters []Filter) bool {
	for _, f := range filters {
		if !f(e) {
			return false
		}
	}
	return true
}

// Target is a resolved entity together with the holder it was found in.
type Target struct {
	Ref    game.EntityRef
	Entity game.Entity
	Source game.Holder
}

// Name returns the display name of the target.
func (t *Target) Name() string {
	return t.Entity.Identity().Name
}

// FindTarget searches each space in order and returns the first match, or
// nil.
func FindTarget(w *game.World, name string, spaces []game.Holder, filters ...Filter) *Target {
	for _, space := range spaces {
		if space == nil {
			continue
		}
		ref, e, ok := Resolve(w, *space.Contents(), name, filters...)
		if ok {
			return &Target{Ref: ref, Entity: e, Source: space}
		}
	}
	return nil
}

// Names returns the display names of every resolvable ref in scope.
func Names(w *game.World, scope game.Scope) []string {
	names := make([]string, 0, len(scope))
	for _, ref := range scope {
		if e, ok := w.Lookup(ref); ok {
			names = append(names, e.Identity().Name)
		}
	}
	return names
}
