package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

var lookMessages = Messages{
	"not_found": "You can't seem to find any {{ .Name }}s here, try using the help command.",
	"sealed":    "{{ .Description }}\n\tThe {{ .Name }} is {{ .State }}.",
}

// LookHandlerFactory creates handlers that describe something in the
// current location. With no argument the location itself is shown by the
// caller, so the result is empty.
type LookHandlerFactory struct{}

func (f *LookHandlerFactory) ValidateConfig(config map[string]any) error {
	_, err := lookMessages.withOverrides(config)
	return err
}

func (f *LookHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	msgs, err := lookMessages.withOverrides(config)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, t *Turn) (*Result, error) {
		if len(t.Args) == 0 {
			return &Result{}, nil
		}

		name := t.Args[0]
		target := FindTarget(t.World, name, []game.Holder{t.Location})
		if target == nil {
			return nil, msgs.Fail(KindNotFound, "not_found", MessageData{Name: name})
		}

		info := target.Entity.Identity()
		c, ok := game.AsContainer(target.Entity)
		switch {
		case ok && c.Sealed():
			return msgs.Reply("sealed", MessageData{Name: info.Name, Description: info.Description, State: c.State})
		case ok && len(c.Inventory) > 0:
			return &Result{Text: listContents(info.Description, t.World, c.Inventory)}, nil
		default:
			return &Result{Text: info.Description}, nil
		}
	}, nil
}
