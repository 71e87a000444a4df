package session

import (
	"github.com/pixil98/go-adventure/internal/audio"
	"github.com/pixil98/go-adventure/internal/parser"
	"github.com/sirupsen/logrus"
)

type SessionOpt func(*Session)

// WithStartLocation overrides the location the player starts in.
func WithStartLocation(id string) SessionOpt {
	return func(s *Session) {
		s.location = id
	}
}

func WithLogger(log logrus.FieldLogger) SessionOpt {
	return func(s *Session) {
		s.log = log.WithFields(logrus.Fields{})
	}
}

func WithAudio(c audio.Controller) SessionOpt {
	return func(s *Session) {
		s.audio = c
	}
}

func WithParser(p *parser.Parser) SessionOpt {
	return func(s *Session) {
		s.parser = p
	}
}
