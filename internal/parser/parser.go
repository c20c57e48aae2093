// Package parser maps free-form console input onto simulation commands,
// tolerating typos and aliases.
package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	Help      string
}

// Intent is the parse result. Verb is empty when nothing matched well
// enough; Suggestion carries the nearest miss, if any.
type Intent struct {
	Raw        string
	Normalised string
	Verb       string
	Args       []string
	Confidence float64
	Suggestion string
}

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Parser struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func New() *Parser {
	p := &Parser{commands: make(map[string]CommandDef)}
	for _, c := range defaultCommands() {
		p.Register(c)
	}
	return p
}

func (p *Parser) Register(c CommandDef) {
	c.Canonical = normalise(c.Canonical)
	if c.Canonical == "" {
		return
	}
	p.commands[c.Canonical] = c
	p.phrases = append(p.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    strings.Fields(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normalise(a)
		if n == "" {
			continue
		}
		p.phrases = append(p.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    strings.Fields(n),
		})
	}
}

// Command returns the definition for a canonical verb.
func (p *Parser) Command(canonical string) (CommandDef, bool) {
	c, ok := p.commands[normalise(canonical)]
	return c, ok
}

// Commands lists every registered command in canonical order.
func (p *Parser) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(p.commands))
	for _, c := range p.commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical < out[j].Canonical })
	return out
}

func (p *Parser) Parse(raw string) Intent {
	intent := Intent{Raw: raw, Normalised: normalise(raw)}
	tokens := strings.Fields(intent.Normalised)
	if len(tokens) == 0 {
		return intent
	}

	best, score := p.match(tokens)
	if best.canonical == "" {
		return intent
	}
	if score < 0.5 {
		intent.Suggestion = best.canonical
		return intent
	}

	def := p.commands[best.canonical]
	args := tokens[len(best.tokens):]
	if len(args) < def.MinArgs || len(args) > def.MaxArgs {
		intent.Suggestion = best.canonical
		return intent
	}

	intent.Verb = best.canonical
	intent.Args = args
	intent.Confidence = score
	return intent
}

func (p *Parser) match(tokens []string) (commandPhrase, float64) {
	var best commandPhrase
	bestScore := 0.0

	for _, phrase := range p.phrases {
		if len(phrase.tokens) > len(tokens) {
			continue
		}
		prefix := strings.Join(tokens[:len(phrase.tokens)], " ")

		score := 0.0
		switch {
		case prefix == phrase.alias:
			score = 1.0
			if phrase.alias != phrase.canonical {
				score = 0.97
			}
		case len(phrase.tokens) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(phrase.alias, tokens[0]):
			score = 0.9
		case len(prefix) >= 3:
			dist := levenshtein.ComputeDistance(prefix, phrase.alias)
			if dist <= distanceLimit(len(phrase.alias)) {
				score = 0.72 - 0.12*float64(dist)
			}
		}

		if score > bestScore {
			best, bestScore = phrase, score
		}
	}
	return best, bestScore
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	var b strings.Builder
	lastSpace := true
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/':
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func defaultCommands() []CommandDef {
	return []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, Help: "list commands"},
		{Canonical: "status", Aliases: []string{"st", "look"}, Help: "weather, fire and body summary"},
		{Canonical: "body", Aliases: []string{"temps", "temperature"}, Help: "per-part temperature table"},
		{Canonical: "time", Aliases: []string{"clock", "date"}, Help: "calendar, sun and moon"},
		{Canonical: "wait", Aliases: []string{"w", "rest", "pass time"}, MinArgs: 1, MaxArgs: 2, Help: "wait <n> [minutes|hours|days]"},
		{Canonical: "sit", Aliases: []string{"sit down"}, Help: "sit down (feet can reach the fire)"},
		{Canonical: "stand", Aliases: []string{"stand up", "get up"}, Help: "stand up"},
		{Canonical: "fire", Aliases: []string{"light fire", "make fire"}, MinArgs: 1, MaxArgs: 2, Help: "fire <intensity> [fuel kg]"},
		{Canonical: "tend", Aliases: []string{"feed fire", "stoke"}, MaxArgs: 1, Help: "tend [fuel kg]"},
		{Canonical: "douse", Aliases: []string{"put out fire"}, Help: "put the fire out"},
		{Canonical: "dress", Aliases: []string{"wear clothes"}, Help: "put on the expedition outfit"},
		{Canonical: "strip", Aliases: []string{"undress"}, Help: "remove all clothing"},
		{Canonical: "reset", Aliases: []string{"normalize"}, Help: "reset body temperature to normal"},
		{Canonical: "quit", Aliases: []string{"q", "exit"}, Help: "leave the simulation"},
	}
}
