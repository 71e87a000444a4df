package commands

import (
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

// DescribeLocation renders a location's description followed by the names
// of everything in it.
func DescribeLocation(w *game.World, loc *game.Location) string {
	if len(loc.Entities) == 0 {
		return loc.Description
	}
	return display.List(loc.Description+"\nAround you, you can see:", "\t", Names(w, loc.Entities))
}

// listContents renders "inventory:" with one line per entry under heading.
func listContents(heading string, w *game.World, scope game.Scope) string {
	return display.List(heading+"\n\tinventory:", "\t\t", Names(w, scope))
}
