// Package terminal draws the game in a full-screen terminal: the scene
// body, a status line and a "> " prompt.
package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

const prompt = "> "

// Game is the session the terminal drives.
type Game interface {
	Render(ctx context.Context) session.Frame
	Handle(ctx context.Context, line string) session.Frame
}

type Terminal struct {
	game  Game
	width int
	log   logrus.FieldLogger
	app   *tview.Application

	body   *tview.TextView
	status *tview.TextView
	input  *tview.InputField
}

func NewTerminal(g Game, opts ...TerminalOpt) *Terminal {
	t := &Terminal{
		game:  g,
		width: display.DefaultWidth,
		log:   logrus.StandardLogger(),
		app:   tview.NewApplication(),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.body = tview.NewTextView().
		SetWrap(true).
		SetWordWrap(true)
	t.status = tview.NewTextView()
	t.input = tview.NewInputField().
		SetLabel(prompt).
		SetFieldBackgroundColor(tcell.ColorDefault)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.body, 0, 1, false).
		AddItem(t.status, 1, 0, false).
		AddItem(t.input, 1, 0, true)
	t.app.SetRoot(layout, true).SetFocus(t.input)

	return t
}

// Start runs the terminal until the player quits or ctx is canceled.
func (t *Terminal) Start(ctx context.Context) error {
	t.show(t.game.Render(ctx))

	t.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		line := t.input.GetText()
		t.input.SetText("")

		f := t.game.Handle(ctx, line)
		t.show(f)
		if f.Quit {
			t.log.Info("player quit")
			t.app.Stop()
		}
	})

	// done signals that Start is returning
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			t.app.Stop()
		case <-done:
		}
	}()

	if err := t.app.Run(); err != nil {
		return fmt.Errorf("running terminal: %w", err)
	}
	return nil
}

func (t *Terminal) show(f session.Frame) {
	t.body.SetText(FormatBody(f.Body, t.width))
	t.body.ScrollToBeginning()
	t.status.SetText(f.Status)
}

// FormatBody wraps every paragraph of body to width. Tabs become four
// spaces so wrapping measures what the screen shows.
func FormatBody(body string, width int) string {
	return display.Wrap(strings.ReplaceAll(body, "\t", "    "), width)
}
