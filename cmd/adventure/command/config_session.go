package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/audio"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/events"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/sirupsen/logrus"
)

type SessionConfig struct {
	// Player is the id of the player record to play. Defaults to the
	// lowest id.
	Player string `json:"player"`
	// StartLocation overrides the location stored on the player record.
	StartLocation string `json:"start_location"`
}

func (c *SessionConfig) validate() error {
	if c.Player != "" && !storage.Identifier(c.Player).Valid() {
		return fmt.Errorf("session: player %q must be alphanumeric", c.Player)
	}
	if c.StartLocation != "" && !storage.Identifier(c.StartLocation).Valid() {
		return fmt.Errorf("session: start_location %q must be alphanumeric", c.StartLocation)
	}
	return nil
}

func (c *SessionConfig) BuildSession(
	w *game.World,
	cmds *commands.Handler,
	ev *events.Engine,
	texts session.Texts,
	ctrl audio.Controller,
	log logrus.FieldLogger,
) (*session.Session, error) {
	if c.Player != "" {
		if err := w.SetPlayer(c.Player); err != nil {
			return nil, fmt.Errorf("selecting player: %w", err)
		}
	}

	opts := []session.SessionOpt{
		session.WithLogger(log),
		session.WithAudio(ctrl),
	}
	if c.StartLocation != "" {
		opts = append(opts, session.WithStartLocation(c.StartLocation))
	}
	return session.New(w, cmds, ev, texts, opts...)
}
