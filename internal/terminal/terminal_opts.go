package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

type TerminalOpt func(*Terminal)

// WithWidth sets the column the body text wraps at.
func WithWidth(width int) TerminalOpt {
	return func(t *Terminal) {
		if width > 0 {
			t.width = width
		}
	}
}

func WithLogger(log logrus.FieldLogger) TerminalOpt {
	return func(t *Terminal) {
		t.log = log
	}
}

// WithScreen draws on screen instead of the process terminal.
func WithScreen(screen tcell.Screen) TerminalOpt {
	return func(t *Terminal) {
		t.app.SetScreen(screen)
	}
}
