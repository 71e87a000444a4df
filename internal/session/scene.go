package session

import (
	"context"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/events"
)

// Scene names what the renderer is showing.
type Scene string

const (
	SceneTitle   Scene = "title"
	SceneOpening Scene = "opening"
	SceneHelp    Scene = "help"
	SceneMap     Scene = "map"
	ScenePlaying Scene = "playing"
	SceneVictory Scene = "victory"
	SceneDefeat  Scene = "defeat"
)

const startPrompt = "Type START to play"

// overlay reports whether the scene returns to the previous one on the
// next input.
func (sc Scene) overlay() bool {
	return sc == SceneHelp || sc == SceneMap
}

// ended reports whether the game is over.
func (sc Scene) ended() bool {
	return sc == SceneVictory || sc == SceneDefeat
}

func (s *Session) render(ctx context.Context) string {
	switch s.scene {
	case SceneOpening:
		return s.opening()
	case SceneHelp:
		return s.texts.Get("help", s.cmds.Usage())
	case SceneMap:
		return s.texts.Get("map", "You have no map.")
	case ScenePlaying:
		return s.playing(ctx)
	case SceneVictory:
		return s.texts.Get("victory", "You win.")
	case SceneDefeat:
		return s.texts.Get("defeat", "You lose.")
	default:
		return s.texts.Get("title", "") + "\n\n" + startPrompt
	}
}

func (s *Session) opening() string {
	if loc := s.world.Location(s.location); loc != nil {
		s.locationName = loc.Name
	}
	return s.texts.Get("opening", "")
}

// playing runs the pending command, if any, then every event. Without a
// pending command the last playing text is shown again.
func (s *Session) playing(ctx context.Context) string {
	loc := s.world.Location(s.location)
	if loc == nil {
		s.log.WithField("location", s.location).Error("current location missing")
		return internalErrorText
	}
	s.locationName = loc.Name

	if len(s.command) == 0 {
		if s.previousText != "" {
			return s.previousText
		}
		return commands.DescribeLocation(s.world, loc)
	}

	cmd := s.command
	s.command = nil

	var text string
	res, err := s.cmds.Exec(ctx, s.world, loc, cmd[0], cmd[1:]...)
	switch {
	case err != nil:
		text = commands.DescribeLocation(s.world, loc) + "\n\n " + s.playerText(err)
	case res != nil && res.Relocate != nil:
		next := s.relocate(res.Relocate.Id)
		if next == nil {
			s.log.WithField("location", res.Relocate.Id).Error("relocated to missing location")
			text = commands.DescribeLocation(s.world, loc) + "\n\n " + internalErrorText
			break
		}
		s.log.WithField("location", res.Relocate.Id).Debug("moved")
		text = commands.DescribeLocation(s.world, next)
		if res.Text != "" {
			text += "\n\n " + res.Text
		}
	default:
		text = commands.DescribeLocation(s.world, loc)
		if res != nil && res.Text != "" {
			text += "\n\n " + res.Text
		}
	}

	tick, err := s.events.Run(events.State{Location: s.location, GodMode: s.godMode})
	if err != nil {
		s.log.WithError(err).Warn("event processing failed")
	}
	if tick != nil {
		if len(tick.Lines) > 0 {
			text += "\n" + joinLines(tick.Lines)
		}
		switch tick.Outcome {
		case events.OutcomeVictory:
			s.setScene(SceneVictory)
		case events.OutcomeDefeat:
			s.setScene(SceneDefeat)
		}
	}

	s.previousText = text
	if s.scene.ended() {
		return text + "\n\n" + s.render(ctx)
	}
	return text
}
