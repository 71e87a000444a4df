package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

var inventoryMessages = Messages{
	"empty":        "Your inventory is empty.",
	"too_many":     "You can only look at one thing at a time.",
	"not_carried":  "You don't have a {{ .Name }}.",
	"no_container": "You don't have a {{ .Container }}.",
	"not_inside":   "There is no {{ .Name }} in the {{ .Container }}.",
	"item":         "{{ .Name }}: {{ .Description }}",
	"sealed":       "{{ .Name }}: {{ .Description }}\n\tThe {{ .Name }} is {{ .State }}.",
	"sealed_in":    "The {{ .Container }} is {{ .State }}.",
}

// InventoryHandlerFactory creates handlers that list or inspect what the
// player carries. Nothing is moved.
type InventoryHandlerFactory struct{}

func (f *InventoryHandlerFactory) ValidateConfig(config map[string]any) error {
	_, err := inventoryMessages.withOverrides(config)
	return err
}

func (f *InventoryHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	msgs, err := inventoryMessages.withOverrides(config)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, t *Turn) (*Result, error) {
		switch len(t.Args) {
		case 0:
			if len(t.Player.Inventory) == 0 {
				return msgs.Reply("empty", MessageData{})
			}
			return &Result{Text: display.List("\ninventory:", "\t", Names(t.World, t.Player.Inventory))}, nil
		case 1:
			return inspectCarried(msgs, t, t.Args[0])
		case 2:
			return inspectInside(msgs, t, t.Args[0], t.Args[1])
		default:
			return nil, msgs.Fail(KindInvalidCommand, "too_many", MessageData{})
		}
	}, nil
}

func inspectCarried(msgs Messages, t *Turn, name string) (*Result, error) {
	item := FindTarget(t.World, name, []game.Holder{t.Player})
	if item == nil {
		return nil, msgs.Fail(KindNotFound, "not_carried", MessageData{Name: name})
	}

	data := MessageData{Name: item.Name(), Description: item.Entity.Identity().Description}
	c, ok := game.AsContainer(item.Entity)
	if ok && c.Sealed() {
		data.State = c.State
		return msgs.Reply("sealed", data)
	}

	text, err := msgs.Render("item", data)
	if err != nil {
		return nil, err
	}
	if ok && len(c.Inventory) > 0 {
		text = listContents(text, t.World, c.Inventory)
	}
	return &Result{Text: text}, nil
}

func inspectInside(msgs Messages, t *Turn, name, containerName string) (*Result, error) {
	target := FindTarget(t.World, containerName, []game.Holder{t.Player}, IsContainer)
	if target == nil {
		return nil, msgs.Fail(KindNotFound, "no_container", MessageData{Container: containerName})
	}
	c, _ := game.AsContainer(target.Entity)
	if c.Sealed() {
		return nil, msgs.Fail(KindStateRejected, "sealed_in", MessageData{Container: c.Name, State: c.State})
	}

	item := FindTarget(t.World, name, []game.Holder{c})
	if item == nil {
		return nil, msgs.Fail(KindNotFound, "not_inside", MessageData{Name: name, Container: c.Name})
	}
	return msgs.Reply("item", MessageData{Name: item.Name(), Description: item.Entity.Identity().Description})
}
