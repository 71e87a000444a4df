package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

var talkMessages = Messages{
	"no_args":   "Please specify who or what you want to talk to, type help to learn more about talking your native language.",
	"not_found": "You can't seem to find any {{ .Name }}s here, try using the help command.",
}

// TalkHandlerFactory creates handlers for talking to npcs and reading
// journals in the current location.
type TalkHandlerFactory struct{}

func (f *TalkHandlerFactory) ValidateConfig(config map[string]any) error {
	_, err := talkMessages.withOverrides(config)
	return err
}

func (f *TalkHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	msgs, err := talkMessages.withOverrides(config)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, t *Turn) (*Result, error) {
		if len(t.Args) == 0 {
			return nil, msgs.Fail(KindInvalidCommand, "no_args", MessageData{})
		}

		name := t.Args[0]
		target := FindTarget(t.World, name, []game.Holder{t.Location}, IsSpeaker)
		if target == nil {
			return nil, msgs.Fail(KindNotFound, "not_found", MessageData{Name: name})
		}

		return &Result{Text: target.Entity.(game.Speaker).Speak()}, nil
	}, nil
}
