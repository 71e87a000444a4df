package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

var useMessages = Messages{
	"no_args":     "What do you want to use?",
	"too_many":    "Try use <thing> or use <key> <thing>.",
	"cant_use":    "You can't use the {{ .Name }}.",
	"used":        "{{ .Description }}",
	"needs_key":   "The {{ .Name }} is {{ .State }}. You need something to open it.",
	"no_key":      "You don't have a {{ .Key }}.",
	"cant_use_on": "You can't use the {{ .Key }} on the {{ .Name }}.",
	"wrong_key":   "The {{ .Key }} doesn't fit the {{ .Name }}.",
	"already":     "The {{ .Name }} is already {{ .State }}.",
	"unlocked":    "You use the {{ .Key }} on the {{ .Name }}. {{ .Description }}",
}

// UseHandlerFactory creates handlers that operate an interactable, or
// apply a key to one.
type UseHandlerFactory struct{}

func (f *UseHandlerFactory) ValidateConfig(config map[string]any) error {
	_, err := useMessages.withOverrides(config)
	return err
}

func (f *UseHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	msgs, err := useMessages.withOverrides(config)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, t *Turn) (*Result, error) {
		switch len(t.Args) {
		case 0:
			return nil, msgs.Fail(KindInvalidCommand, "no_args", MessageData{})
		case 1:
			return operate(msgs, t, t.Args[0])
		case 2:
			return unlock(msgs, t, t.Args[0], t.Args[1])
		default:
			return nil, msgs.Fail(KindInvalidCommand, "too_many", MessageData{})
		}
	}, nil
}

func operate(msgs Messages, t *Turn, name string) (*Result, error) {
	target := FindTarget(t.World, name, []game.Holder{t.Location, t.Player}, IsInteractable)
	if target == nil {
		return nil, msgs.Fail(KindNotFound, "cant_use", MessageData{Name: name})
	}
	m, _ := game.AsInteractable(target.Entity)

	err := m.Cycle()
	switch {
	case errors.Is(err, game.ErrKeyRequired):
		return nil, msgs.Fail(KindStateRejected, "needs_key", MessageData{Name: target.Name(), State: m.State})
	case err != nil:
		return nil, fmt.Errorf("cycling %s: %w", target.Ref, err)
	}
	return msgs.Reply("used", MessageData{Name: target.Name(), State: m.State, Description: m.Description()})
}

func unlock(msgs Messages, t *Turn, keyName, name string) (*Result, error) {
	key := FindTarget(t.World, keyName, []game.Holder{t.Location, t.Player}, OfKind(game.KindItem))
	if key == nil {
		return nil, msgs.Fail(KindNotFound, "no_key", MessageData{Key: keyName})
	}

	target := FindTarget(t.World, name, []game.Holder{t.Location}, IsInteractable)
	if target == nil {
		return nil, msgs.Fail(KindNotFound, "cant_use_on", MessageData{Key: key.Name(), Name: name})
	}
	m, _ := game.AsInteractable(target.Entity)

	data := MessageData{Key: key.Name(), Name: target.Name()}
	err := m.Unlock(key.Name())
	data.State = m.State
	switch {
	case errors.Is(err, game.ErrWrongKey):
		return nil, msgs.Fail(KindStateRejected, "wrong_key", data)
	case errors.Is(err, game.ErrAlreadyInState):
		return nil, msgs.Fail(KindStateRejected, "already", data)
	case err != nil:
		return nil, fmt.Errorf("unlocking %s: %w", target.Ref, err)
	}

	data.Description = m.Description()
	return msgs.Reply("unlocked", data)
}
