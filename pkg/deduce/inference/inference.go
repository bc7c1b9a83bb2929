package inference

import (
	"fmt"
	"strings"
)

// Reasoner is the surface a front end needs from a categorical engine.
// This interface allows swapping implementations (the graph engine in
// package simple, a datalog bridge, etc.)
type Reasoner interface {
	// AddNoun registers a noun and its negation
	AddNoun(noun string) error

	// HasNoun reports whether both the noun and its negation are known
	HasNoun(noun string) bool

	// Nouns lists known base nouns (negations excluded)
	Nouns() []string

	// Teach records a categorical statement
	Teach(s Statement) error

	// Ask answers a categorical question
	Ask(s Statement) bool

	// Explain renders the proof chain behind Ask
	Explain(s Statement) string
}

// Truth is the weight of a relationship edge
type Truth int

const (
	Never     Truth = -1
	Sometimes Truth = 0
	Always    Truth = 1
)

func (t Truth) String() string {
	switch t {
	case Always:
		return "always"
	case Sometimes:
		return "sometimes"
	case Never:
		return "never"
	default:
		return fmt.Sprintf("truth(%d)", int(t))
	}
}

// Kind is the quantifier of a categorical statement
type Kind int

const (
	KindAll  Kind = iota + 1 // all X are Y
	KindNo                   // no X are Y
	KindSome                 // some X are Y
)

func (k Kind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindNo:
		return "no"
	case KindSome:
		return "some"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a quantifier word to its Kind
func ParseKind(word string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "all":
		return KindAll, true
	case "no":
		return KindNo, true
	case "some":
		return KindSome, true
	}
	return 0, false
}

// Statement is a categorical statement about two nouns
type Statement struct {
	Kind      Kind
	Subject   string
	Predicate string
}

func (s Statement) String() string {
	return fmt.Sprintf("%s %s are %s", s.Kind, s.Subject, s.Predicate)
}

// Question renders the statement as a question
func (s Statement) Question() string {
	return fmt.Sprintf("are %s %s %s?", s.Kind, s.Subject, s.Predicate)
}

// Step represents one edge in a proof
type Step struct {
	From   string
	To     string
	Weight Truth
	Depth  int // hops from the query subject
}

func (s Step) String() string {
	return fmt.Sprintf("%s -> %s (%s)", s.From, s.To, s.Weight)
}
