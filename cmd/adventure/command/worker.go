package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/events"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-adventure/internal/terminal"
	"github.com/pixil98/go-service"
	"github.com/sirupsen/logrus"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	logger, err := cfg.Log.BuildLogger()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	sess, err := cfg.BuildSession(logger)
	if err != nil {
		return nil, err
	}

	return service.WorkerList{
		"terminal": terminal.NewTerminal(sess, terminal.WithLogger(logger)),
	}, nil
}

// BuildSession loads the world and every store under the data root and
// assembles a session on the title scene.
func (c *Config) BuildSession(logger logrus.FieldLogger) (*session.Session, error) {
	w, err := c.BuildWorld()
	if err != nil {
		return nil, err
	}

	cmdStore, err := c.Storage.BuildCommands()
	if err != nil {
		return nil, fmt.Errorf("creating command store: %w", err)
	}
	cmds := commands.NewHandler(cmdStore)
	if err := cmds.CompileAll(); err != nil {
		return nil, fmt.Errorf("compiling commands: %w", err)
	}

	texts, err := c.Storage.BuildTexts()
	if err != nil {
		return nil, fmt.Errorf("loading texts: %w", err)
	}

	sess, err := c.Session.BuildSession(
		w,
		cmds,
		events.NewEngine(w, logger),
		texts,
		c.Audio.BuildController(logger),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"session":   sess.Id(),
		"locations": len(w.Locations),
		"events":    len(w.Events),
	}).Info("world loaded")

	return sess, nil
}

// BuildWorld loads the world and checks that every event is well formed.
func (c *Config) BuildWorld() (*game.World, error) {
	dict, err := c.Storage.BuildDictionary()
	if err != nil {
		return nil, err
	}

	w, err := dict.Build()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	if err := events.Check(w); err != nil {
		return nil, fmt.Errorf("checking events: %w", err)
	}
	return w, nil
}
