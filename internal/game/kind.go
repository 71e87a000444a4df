package game

import "fmt"

// Kind partitions the world's entities. An id is only unique within its kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindLocation
	KindItem
	KindContainer
	KindNpc
	KindTransition
	KindJournal
	KindPlayer
	KindEvent
)

var kindNames = map[Kind]string{
	KindLocation:   "location",
	KindItem:       "item",
	KindContainer:  "container",
	KindNpc:        "npc",
	KindTransition: "transition",
	KindJournal:    "journal",
	KindPlayer:     "player",
	KindEvent:      "event",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind converts a data-file kind label into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown entity kind: %s", s)
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	if k == KindUnknown {
		return nil, fmt.Errorf("cannot marshal unknown kind")
	}
	return []byte(k.String()), nil
}

// EntityRef addresses one entity in the World. Scopes hold refs, never the
// entities themselves.
type EntityRef struct {
	Kind Kind   `json:"kind"`
	Id   string `json:"id"`
}

// Ref builds an EntityRef.
func Ref(kind Kind, id string) EntityRef {
	return EntityRef{Kind: kind, Id: id}
}

func (r EntityRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.Id)
}

func (r EntityRef) Validate() error {
	if r.Kind == KindUnknown {
		return fmt.Errorf("ref %q: kind is required", r.Id)
	}
	if r.Id == "" {
		return fmt.Errorf("%s ref: id is required", r.Kind)
	}
	return nil
}
