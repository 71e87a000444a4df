package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

var dropMessages = Messages{
	"no_args":       "What do you want to drop?",
	"too_many":      "You can only drop one thing at a time.",
	"dropped":       "You drop the {{ .Name }} on the ground.",
	"not_carried":   "You don't have a {{ .Name }}.",
	"no_container":  "You can't seem to find a {{ .Container }} here.",
	"not_container": "{{ .Container | capitalize }} is not a container.",
	"sealed":        "The {{ .Container }} is {{ .State }}.",
	"put":           "You put the {{ .Name }} in the {{ .Container }}.",
}

// DropHandlerFactory creates handlers for putting carried things on the
// ground or into a container standing in the location.
type DropHandlerFactory struct{}

func (f *DropHandlerFactory) ValidateConfig(config map[string]any) error {
	_, err := dropMessages.withOverrides(config)
	return err
}

func (f *DropHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	msgs, err := dropMessages.withOverrides(config)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, t *Turn) (*Result, error) {
		switch len(t.Args) {
		case 0:
			return nil, msgs.Fail(KindInvalidCommand, "no_args", MessageData{})
		case 1:
			item := FindTarget(t.World, t.Args[0], []game.Holder{t.Player})
			if item == nil {
				return nil, msgs.Fail(KindNotFound, "not_carried", MessageData{Name: t.Args[0]})
			}
			t.World.Move(item.Ref, t.Player, t.Location)
			return msgs.Reply("dropped", MessageData{Name: item.Name()})
		case 2:
			return putInContainer(msgs, t, t.Args[0], t.Args[1])
		default:
			return nil, msgs.Fail(KindInvalidCommand, "too_many", MessageData{})
		}
	}, nil
}

func putInContainer(msgs Messages, t *Turn, name, containerName string) (*Result, error) {
	c, err := reachContainer(msgs, t, containerName)
	if err != nil {
		return nil, err
	}

	item := FindTarget(t.World, name, []game.Holder{t.Player})
	if item == nil {
		return nil, msgs.Fail(KindNotFound, "not_carried", MessageData{Name: name})
	}

	t.World.Move(item.Ref, t.Player, c)
	return msgs.Reply("put", MessageData{Name: item.Name(), Container: c.Name})
}
