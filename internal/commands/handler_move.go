package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

var moveMessages = Messages{
	"no_args":   "Where do you want to go?",
	"not_found": "You can't move to the {{ .Name }}, try using the help command.",
	"blocked":   "You can't go that way because the {{ .Name }} is {{ .State }}.",
}

// MoveHandlerFactory creates handlers for moving through a transition.
// A successful move returns the target location in Result.Relocate; the
// caller changes the current location.
type MoveHandlerFactory struct{}

func (f *MoveHandlerFactory) ValidateConfig(config map[string]any) error {
	_, err := moveMessages.withOverrides(config)
	return err
}

func (f *MoveHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	msgs, err := moveMessages.withOverrides(config)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, t *Turn) (*Result, error) {
		if len(t.Args) == 0 {
			return nil, msgs.Fail(KindInvalidCommand, "no_args", MessageData{})
		}

		name := t.Args[0]
		target := FindTarget(t.World, name, []game.Holder{t.Location}, IsPortal)
		if target == nil {
			return nil, msgs.Fail(KindNotFound, "not_found", MessageData{Name: name})
		}

		portal := target.Entity.(game.Portal)
		if m := portal.Machine(); m.Blocking() {
			return nil, msgs.Fail(KindStateRejected, "blocked", MessageData{Name: target.Name(), State: m.State})
		}

		dest := portal.Destination()
		if t.World.Location(dest.Id) == nil {
			return nil, fmt.Errorf("transition %s: %w location %q", target.Ref.Id, game.ErrUnknownEntity, dest.Id)
		}
		return &Result{Relocate: &dest}, nil
	}, nil
}
