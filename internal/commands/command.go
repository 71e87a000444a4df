package commands

import (
	"fmt"
	"regexp"
)

var verbPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Command defines a player verb loaded from JSON. The asset id is the verb.
type Command struct {
	Handler     string         `json:"handler"`
	Description string         `json:"description"`
	Aliases     []string       `json:"aliases,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

func (c *Command) Validate() error {
	if c.Handler == "" {
		return fmt.Errorf("command handler not set")
	}
	for _, a := range c.Aliases {
		if !verbPattern.MatchString(a) {
			return fmt.Errorf("alias %q must be a single lowercase word", a)
		}
	}
	return nil
}

// DefaultCommands returns the built-in verbs. Commands loaded from data
// with the same id replace these.
func DefaultCommands() map[string]*Command {
	return map[string]*Command{
		"look": {
			Handler:     "look",
			Description: "look [thing] - describe your surroundings or something in them",
			Aliases:     []string{"l", "examine"},
		},
		"talk": {
			Handler:     "talk",
			Description: "talk <someone> - talk to a person or read a journal",
			Aliases:     []string{"read"},
		},
		"move": {
			Handler:     "move",
			Description: "move <exit> - go through a door, path or passage",
			Aliases:     []string{"go"},
		},
		"take": {
			Handler:     "take",
			Description: "take <thing> [container] - pick something up",
			Aliases:     []string{"get"},
		},
		"drop": {
			Handler:     "drop",
			Description: "drop <thing> [container] - put something down",
			Aliases:     []string{"put"},
		},
		"inventory": {
			Handler:     "inventory",
			Description: "inventory [thing] [container] - list or inspect what you carry",
			Aliases:     []string{"i", "inv"},
		},
		"use": {
			Handler:     "use",
			Description: "use <thing> | use <key> <thing> - operate or unlock something",
		},
	}
}
