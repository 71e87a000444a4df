package commands

import "context"

var invalidMessages = Messages{
	"invalid": "command not found please use the help command to see valid commands and examples",
}

// InvalidHandlerFactory creates the handler every unknown verb falls
// through to.
type InvalidHandlerFactory struct{}

func (f *InvalidHandlerFactory) ValidateConfig(config map[string]any) error {
	_, err := invalidMessages.withOverrides(config)
	return err
}

func (f *InvalidHandlerFactory) Create(config map[string]any) (CommandFunc, error) {
	msgs, err := invalidMessages.withOverrides(config)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, t *Turn) (*Result, error) {
		return nil, msgs.Fail(KindInvalidCommand, "invalid", MessageData{Name: t.Verb})
	}, nil
}
