package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

var takeMessages = Messages{
	"no_args":          "What do you want to take?",
	"too_many":         "You can only take one thing at a time.",
	"taken":            "You pickup the {{ .Name }}.",
	"cant_take":        "You can't pick up the {{ .Name }}.",
	"no_container":     "You can't seem to find a {{ .Container }} here.",
	"not_container":    "{{ .Container | capitalize }} is not a container.",
	"sealed":           "The {{ .Container }} is {{ .State }}.",
	"taken_from":       "You take the {{ .Name }} from inside the {{ .Container }}.",
	"not_in_container": "You can't take the {{ .Name }} from the {{ .Container }}.",
}

// TakeHandlerFactory creates handlers for picking things up, either off
// the ground or out of a container standing in the location.
type TakeHandlerFactory struct{}

func (f *TakeHandlerFactory) ValidateConfig(config map[string]any) error {
	_, err := takeMessages.withOverrides(config)
	return err
}

func (f *TakeHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	msgs, err := takeMessages.withOverrides(config)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, t *Turn) (*Result, error) {
		switch len(t.Args) {
		case 0:
			return nil, msgs.Fail(KindInvalidCommand, "no_args", MessageData{})
		case 1:
			return takeFromGround(msgs, t, t.Args[0])
		case 2:
			return takeFromContainer(msgs, t, t.Args[0], t.Args[1])
		default:
			return nil, msgs.Fail(KindInvalidCommand, "too_many", MessageData{})
		}
	}, nil
}

func takeFromGround(msgs Messages, t *Turn, name string) (*Result, error) {
	item := FindTarget(t.World, name, []game.Holder{t.Location}, Carryable)
	if item == nil {
		return nil, msgs.Fail(KindNotFound, "cant_take", MessageData{Name: name})
	}

	t.World.Move(item.Ref, t.Location, t.Player)
	return msgs.Reply("taken", MessageData{Name: item.Name()})
}

func takeFromContainer(msgs Messages, t *Turn, name, containerName string) (*Result, error) {
	c, err := reachContainer(msgs, t, containerName)
	if err != nil {
		return nil, err
	}

	item := FindTarget(t.World, name, []game.Holder{c}, NotKind(game.KindLocation, game.KindNpc))
	if item == nil {
		return nil, msgs.Fail(KindNotFound, "not_in_container", MessageData{Name: name, Container: c.Name})
	}

	t.World.Move(item.Ref, c, t.Player)
	return msgs.Reply("taken_from", MessageData{Name: item.Name(), Container: c.Name})
}

// reachContainer finds an open container by name in the current location.
// msgs must define no_container, not_container and sealed.
func reachContainer(msgs Messages, t *Turn, name string) (*game.Container, error) {
	target := FindTarget(t.World, name, []game.Holder{t.Location})
	if target == nil {
		return nil, msgs.Fail(KindNotFound, "no_container", MessageData{Container: name})
	}

	c, ok := game.AsContainer(target.Entity)
	if !ok {
		return nil, msgs.Fail(KindTypeMismatch, "not_container", MessageData{Container: target.Name()})
	}
	if c.Sealed() {
		return nil, msgs.Fail(KindStateRejected, "sealed", MessageData{Container: c.Name, State: c.State})
	}
	return c, nil
}
