package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Npc is a character the player can talk to.
type Npc struct {
	Info
	Dialogue string `json:"dialogue"`
}

func (n *Npc) Kind() Kind { return KindNpc }

func (n *Npc) Speak() string { return n.Dialogue }

// Validate satisfies storage.ValidatingSpec
func (n *Npc) Validate() error {
	return n.Info.Validate()
}

// Journal is a readable log. Talking to it shows the story and the log.
type Journal struct {
	Info
	Story    string `json:"story"`
	Dialogue string `json:"dialogue"`
}

func (j *Journal) Kind() Kind { return KindJournal }

func (j *Journal) Speak() string {
	return fmt.Sprintf("IMPORTANT:\n\t%s\n\n Journal log:\n\t%s", j.Story, j.Dialogue)
}

// Validate satisfies storage.ValidatingSpec
func (j *Journal) Validate() error {
	el := errors.NewErrorList()
	el.Add(j.Info.Validate())
	if j.Story == "" {
		el.Add(fmt.Errorf("journal story is required"))
	}
	return el.Err()
}
