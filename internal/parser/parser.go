// Package parser turns a typed line into a verb and its arguments.
package parser

import (
	"sort"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/pixil98/go-adventure/internal/game"
)

// Parser lowercases a line and splits it on whitespace, keeping every
// known multi-word name together as one token. Matched names are returned
// spelled as the data spells them.
type Parser struct {
	ac        ahocorasick.AhoCorasick
	patterns  []string
	canonical map[string]string
}

// New builds a Parser over names. Earlier spellings win when two names
// differ only in case.
func New(names []string) *Parser {
	p := &Parser{canonical: map[string]string{}}
	for _, n := range names {
		key := strings.Join(strings.Fields(strings.ToLower(n)), " ")
		if key == "" {
			continue
		}
		if _, ok := p.canonical[key]; ok {
			continue
		}
		p.canonical[key] = n
		p.patterns = append(p.patterns, key)
	}

	if len(p.patterns) > 0 {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			AsciiCaseInsensitive: false,
			MatchOnlyWholeWords:  true,
			MatchKind:            ahocorasick.LeftMostLongestMatch,
		})
		p.ac = builder.Build(p.patterns)
	}
	return p
}

// NewForWorld builds a Parser over the name of every entity in w.
func NewForWorld(w *game.World) *Parser {
	return New(Vocabulary(w))
}

// Parse tokenizes line. The first token is the verb and is never
// grouped with what follows. An empty line gives no tokens.
func (p *Parser) Parse(line string) []string {
	normalized := strings.Join(strings.Fields(strings.ToLower(line)), " ")
	if normalized == "" {
		return nil
	}
	if len(p.patterns) == 0 {
		return strings.Fields(normalized)
	}
	verb, rest, _ := strings.Cut(normalized, " ")

	// Names are only matched in the arguments; the verb is kept as typed.
	tokens := []string{verb}
	pos := 0
	for _, m := range p.ac.FindAll(rest) {
		if m.Start() < pos {
			continue
		}
		tokens = append(tokens, strings.Fields(rest[pos:m.Start()])...)
		tokens = append(tokens, p.canonical[p.patterns[m.Pattern()]])
		pos = m.End()
	}
	tokens = append(tokens, strings.Fields(rest[pos:])...)
	return tokens
}

// Vocabulary returns the distinct names of every entity that can appear in
// a scope, sorted.
func Vocabulary(w *game.World) []string {
	seen := map[string]bool{}
	add := func(e game.Entity) {
		seen[e.Identity().Name] = true
	}
	for _, e := range w.Items {
		add(e)
	}
	for _, e := range w.Containers {
		add(e)
	}
	for _, e := range w.Npcs {
		add(e)
	}
	for _, e := range w.Journals {
		add(e)
	}
	for _, e := range w.Transitions {
		add(e)
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
