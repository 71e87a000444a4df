package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/audio"
	"github.com/pixil98/go-adventure/internal/events"
	"github.com/sirupsen/logrus"
)

// metaResult is the outcome of a verb handled by the session itself.
type metaResult struct {
	text     string
	consumed bool
	quit     bool
}

type metaFunc func(s *Session, args []string) metaResult

var metaVerbs = map[string]metaFunc{
	"start": (*Session).metaStart,
	"quit":  (*Session).metaQuit,
	"help": func(s *Session, args []string) metaResult {
		return s.metaOverlay(SceneHelp)
	},
	"map": func(s *Session, args []string) metaResult {
		return s.metaOverlay(SceneMap)
	},
	"goto":              (*Session).metaGoto,
	"poweroverwhelming": (*Session).metaGodMode,
	"enable": func(s *Session, args []string) metaResult {
		return s.metaToggle(true, args)
	},
	"disable": func(s *Session, args []string) metaResult {
		return s.metaToggle(false, args)
	},
	"music": (*Session).metaMusic,
}

// endedVerbs are the only verbs accepted once the game is over.
var endedVerbs = map[string]bool{"quit": true, "help": true, "map": true}

// IsMetaVerb reports whether verb is handled by the session rather than
// the command handler.
func IsMetaVerb(verb string) bool {
	_, ok := metaVerbs[verb]
	return ok
}

// meta handles verbs that act on the session. A result that is not
// consumed goes to the command handler when playing.
func (s *Session) meta(tokens []string) metaResult {
	verb, args := tokens[0], tokens[1:]

	if s.scene.ended() && !endedVerbs[verb] {
		return metaResult{consumed: true}
	}

	fn, ok := metaVerbs[verb]
	if !ok {
		return metaResult{}
	}
	return fn(s, args)
}

func (s *Session) metaStart(args []string) metaResult {
	if s.scene == SceneTitle {
		s.setScene(SceneOpening)
	}
	return metaResult{consumed: true}
}

func (s *Session) metaQuit(args []string) metaResult {
	s.log.Info("quit")
	return metaResult{consumed: true, quit: true}
}

func (s *Session) metaOverlay(sc Scene) metaResult {
	s.previous = s.scene
	s.setScene(sc)
	return metaResult{consumed: true}
}

func (s *Session) metaGoto(args []string) metaResult {
	if s.scene != ScenePlaying || !s.godMode {
		return metaResult{}
	}
	if len(args) == 0 {
		return metaResult{text: "Go to which location?", consumed: true}
	}

	if s.relocate(args[0]) == nil {
		return metaResult{text: fmt.Sprintf("There is no location %s.", args[0]), consumed: true}
	}
	s.previousText = ""
	s.log.WithField("location", args[0]).Info("teleported")
	return metaResult{consumed: true}
}

func (s *Session) metaGodMode(args []string) metaResult {
	if s.scene != ScenePlaying {
		return metaResult{}
	}
	s.godMode = !s.godMode
	s.log.WithField("god_mode", s.godMode).Info("god mode toggled")
	if s.godMode {
		return metaResult{text: "God mode enabled.", consumed: true}
	}
	return metaResult{text: "God mode disabled.", consumed: true}
}

func (s *Session) metaToggle(active bool, args []string) metaResult {
	if !s.godMode {
		return metaResult{}
	}
	verb := "disable"
	if active {
		verb = "enable"
	}

	changed, err := s.events.SetActive(active, args...)
	switch {
	case errors.Is(err, events.ErrUnknownEvent):
		return metaResult{text: fmt.Sprintf("There is no event %s.", args[0]), consumed: true}
	case err != nil:
		return metaResult{text: fmt.Sprintf("Try %s <id> or %s <first> <last>.", verb, verb), consumed: true}
	case len(changed) == 0:
		return metaResult{text: "No events changed.", consumed: true}
	}
	return metaResult{
		text:     fmt.Sprintf("%sd events: %s.", strings.ToUpper(verb[:1])+verb[1:], strings.Join(changed, ", ")),
		consumed: true,
	}
}

func (s *Session) metaMusic(args []string) metaResult {
	if s.scene == ScenePlaying {
		return metaResult{}
	}

	intent := audio.IntentToggle
	if len(args) > 0 {
		i, err := audio.ParseIntent(args[0])
		if err != nil {
			return metaResult{text: "Try music <pause|play|up|down|toggle>.", consumed: true}
		}
		intent = i
	}

	st, err := s.audio.Apply(intent)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"intent": intent}).Warn("music failed")
		return metaResult{consumed: true}
	}
	return metaResult{text: st.String(), consumed: true}
}
