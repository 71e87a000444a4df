// Package session sequences the scenes of one game: title, opening,
// playing and the endings, with help and map shown as overlays. A Session
// turns one line of input into one Frame for the renderer.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/audio"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/events"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/parser"
	"github.com/sirupsen/logrus"
)

// Frame is everything the renderer shows after a turn.
type Frame struct {
	Scene  Scene
	Body   string
	Status string
	// Quit asks the renderer to end the process.
	Quit bool
}

// Texts supplies the authored scene bodies by name.
type Texts interface {
	Get(name, fallback string) string
}

const internalErrorText = "Something went wrong. Try another command."

type Session struct {
	mu sync.Mutex

	id     string
	log    *logrus.Entry
	world  *game.World
	cmds   *commands.Handler
	events *events.Engine
	parser *parser.Parser
	audio  audio.Controller
	texts  Texts

	scene        Scene
	previous     Scene
	location     string
	locationName string
	godMode      bool
	command      []string
	previousText string
}

// New creates a Session on the title scene. The start location is the
// WithStartLocation option, else the player's saved location, else the
// lowest location id.
func New(w *game.World, cmds *commands.Handler, ev *events.Engine, texts Texts, opts ...SessionOpt) (*Session, error) {
	s := &Session{
		id:     uuid.NewString(),
		world:  w,
		cmds:   cmds,
		events: ev,
		texts:  texts,
		scene:  SceneTitle,
	}
	s.log = logrus.NewEntry(logrus.StandardLogger())

	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("session", s.id)

	if s.parser == nil {
		s.parser = parser.NewForWorld(w)
	}
	if s.audio == nil {
		s.audio = audio.NewMixer(audio.DefaultVolume, audio.DefaultStep, s.log)
	}

	player := w.Player()
	if player == nil {
		return nil, errors.New("world has no player")
	}
	if s.location == "" {
		s.location = player.Location
	}
	if s.location == "" {
		ids := game.SortIds(w.Locations)
		if len(ids) == 0 {
			return nil, errors.New("world has no locations")
		}
		s.location = ids[0]
	}
	if w.Location(s.location) == nil {
		return nil, fmt.Errorf("start location %q: %w", s.location, game.ErrUnknownEntity)
	}

	return s, nil
}

func (s *Session) Id() string {
	return s.id
}

// Scene returns the scene currently shown.
func (s *Session) Scene() Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

// Location returns the id of the location the player stands in.
func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// GodMode reports whether the cheat verbs are enabled.
func (s *Session) GodMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.godMode
}

// Render returns the current frame without consuming input.
func (s *Session) Render(ctx context.Context) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame(ctx, "")
}

// Handle runs one line of input and returns the frame to show. Turns never
// overlap.
func (s *Session) Handle(ctx context.Context, line string) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.scene.overlay():
		s.setScene(s.previous)
		return s.frame(ctx, "")
	case s.scene == SceneOpening:
		s.setScene(ScenePlaying)
		return s.frame(ctx, "")
	}

	tokens := s.parser.Parse(line)
	if len(tokens) == 0 {
		return s.frame(ctx, "")
	}

	s.log.WithFields(logrus.Fields{
		"scene": s.scene,
		"verb":  tokens[0],
		"args":  tokens[1:],
	}).Debug("input")

	res := s.meta(tokens)
	if res.quit {
		return Frame{Scene: s.scene, Body: "Quitting...", Status: s.status(), Quit: true}
	}
	if !res.consumed && s.scene == ScenePlaying {
		s.command = tokens
	}
	return s.frame(ctx, res.text)
}

// frame renders the current scene, prefixed by text when it is not empty.
func (s *Session) frame(ctx context.Context, text string) Frame {
	body := s.render(ctx)
	if text != "" {
		body = text + "\n" + body
	}
	return Frame{Scene: s.scene, Body: body, Status: s.status()}
}

// status is "<player state> @ <Location Name>".
func (s *Session) status() string {
	state := ""
	if p := s.world.Player(); p != nil {
		state = p.State
	}
	return fmt.Sprintf("%s @ %s", state, display.Title(s.locationName))
}

func (s *Session) setScene(next Scene) {
	if next == s.scene {
		return
	}
	s.log.WithFields(logrus.Fields{
		"from": s.scene,
		"to":   next,
	}).Info("scene changed")
	s.scene = next
}

// relocate moves the player to the location id and clears the replay text.
func (s *Session) relocate(id string) *game.Location {
	loc := s.world.Location(id)
	if loc == nil {
		return nil
	}
	s.location = id
	s.locationName = loc.Name
	if p := s.world.Player(); p != nil {
		p.Location = id
	}
	return loc
}

// playerText renders a failed turn the way the player should see it.
func (s *Session) playerText(err error) string {
	var userErr *commands.UserError
	if errors.As(err, &userErr) {
		return userErr.Message
	}
	s.log.WithError(err).Error("turn failed")
	return internalErrorText
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
