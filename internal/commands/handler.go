package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Turn is everything a verb handler may read or change.
type Turn struct {
	World    *game.World
	Location *game.Location
	Player   *game.Player
	Verb     string
	Args     []string
}

// Result is the outcome of a successful verb.
type Result struct {
	// Text is shown below the location description.
	Text string
	// Relocate, when set, names the location the player moves to.
	Relocate *game.EntityRef
}

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, turn *Turn) (*Result, error)

// HandlerFactory creates CommandFuncs from command configurations.
// Implementations should expose their expected config structure.
type HandlerFactory interface {
	// ValidateConfig validates that the config contains required fields.
	ValidateConfig(config map[string]any) error
	// Create creates a CommandFunc from the validated config.
	Create(config map[string]any) (CommandFunc, error)
}

// compiledCommand holds a command that's been validated and compiled.
type compiledCommand struct {
	verb    string
	cmd     *Command
	cmdFunc CommandFunc
}

// Handler dispatches verbs to compiled commands. Anything unknown goes to
// the invalid handler.
type Handler struct {
	store     storage.Storer[*Command]
	factories map[string]HandlerFactory
	compiled  map[string]*compiledCommand
	fallback  CommandFunc
}

func NewHandler(c storage.Storer[*Command]) *Handler {
	h := &Handler{
		store:     c,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[string]*compiledCommand),
	}
	// Register built-in handlers
	_ = h.RegisterFactory("look", &LookHandlerFactory{})
	_ = h.RegisterFactory("talk", &TalkHandlerFactory{})
	_ = h.RegisterFactory("move", &MoveHandlerFactory{})
	_ = h.RegisterFactory("take", &TakeHandlerFactory{})
	_ = h.RegisterFactory("drop", &DropHandlerFactory{})
	_ = h.RegisterFactory("inventory", &InventoryHandlerFactory{})
	_ = h.RegisterFactory("use", &UseHandlerFactory{})
	_ = h.RegisterFactory("invalid", &InvalidHandlerFactory{})
	return h
}

// RegisterFactory registers a handler factory by name.
// The name must match the "handler" field in command JSON definitions.
func (h *Handler) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	h.factories[name] = factory
	return nil
}

// CompileAll compiles the built-in commands and every command from the
// store, then the invalid fallback. A stored command named "invalid"
// replaces the fallback.
// Call this after all handler factories have been registered.
func (h *Handler) CompileAll() error {
	cmds := DefaultCommands()
	if h.store != nil {
		for id, cmd := range h.store.GetAll() {
			cmds[id] = cmd
		}
	}

	ids := make([]string, 0, len(cmds))
	for id := range cmds {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		err := h.compile(id, cmds[id])
		if err != nil {
			return fmt.Errorf("compiling command %q: %w", id, err)
		}
	}

	if c, ok := h.compiled["invalid"]; ok {
		h.fallback = c.cmdFunc
		return nil
	}
	fallback, err := (&InvalidHandlerFactory{}).Create(nil)
	if err != nil {
		return fmt.Errorf("creating invalid handler: %w", err)
	}
	h.fallback = fallback
	return nil
}

func (h *Handler) compile(id string, cmd *Command) error {
	factory, ok := h.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	cmdFunc, err := factory.Create(cmd.Config)
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	cc := &compiledCommand{verb: id, cmd: cmd, cmdFunc: cmdFunc}
	for _, name := range append([]string{id}, cmd.Aliases...) {
		if prev, exists := h.compiled[name]; exists && prev.verb != id {
			return fmt.Errorf("%q already used by command %q", name, prev.verb)
		}
		h.compiled[name] = cc
	}
	return nil
}

// Exec runs one verb against the world with the player standing in loc.
func (h *Handler) Exec(ctx context.Context, w *game.World, loc *game.Location, verb string, args ...string) (*Result, error) {
	if loc == nil {
		return nil, fmt.Errorf("exec %q: no current location", verb)
	}
	player := w.Player()
	if player == nil {
		return nil, fmt.Errorf("exec %q: no player", verb)
	}

	turn := &Turn{
		World:    w,
		Location: loc,
		Player:   player,
		Verb:     strings.ToLower(verb),
		Args:     args,
	}

	cmdFunc := h.fallback
	if c, ok := h.compiled[turn.Verb]; ok {
		cmdFunc = c.cmdFunc
	}
	if cmdFunc == nil {
		return nil, fmt.Errorf("exec %q: handler not compiled", verb)
	}
	return cmdFunc(ctx, turn)
}

// Known reports whether verb dispatches to a command other than the
// invalid fallback.
func (h *Handler) Known(verb string) bool {
	_, ok := h.compiled[strings.ToLower(verb)]
	return ok
}

// Usage lists every command's description, one per line, by verb.
func (h *Handler) Usage() string {
	seen := map[string]bool{}
	var lines []string
	for _, c := range h.compiled {
		if seen[c.verb] || c.cmd.Description == "" {
			continue
		}
		seen[c.verb] = true
		lines = append(lines, c.cmd.Description)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
