package interpreter

import (
	"regexp"
	"strings"

	"github.com/cognicore/deduce/pkg/deduce/inference"
)

var (
	matchHelp    = regexp.MustCompile(`^help$`)
	matchNouns   = regexp.MustCompile(`^nouns$`)
	matchTeach   = regexp.MustCompile(`^(all|no|some) ([a-z0-9\s_-]+?) are ([a-z0-9\s_-]+?)\.?$`)
	matchQuery   = regexp.MustCompile(`^are (all|no|some) ([a-z0-9\s_-]+?)\??$`)
	matchExplain = regexp.MustCompile(`^why (are (?:all|no|some) .+)$`)
)

// parseTeach extracts a statement from "all|no|some X are Y"
func parseTeach(line string) (inference.Statement, bool) {
	m := matchTeach.FindStringSubmatch(line)
	if m == nil {
		return inference.Statement{}, false
	}
	kind, _ := inference.ParseKind(m[1])
	return inference.Statement{
		Kind:      kind,
		Subject:   strings.TrimSpace(m[2]),
		Predicate: strings.TrimSpace(m[3]),
	}, true
}

// parseQuery extracts a statement from "are all|no|some X Y". The two noun
// phrases are not delimited, so the split is resolved against known nouns.
func parseQuery(line string, known func(string) bool) (inference.Statement, bool) {
	m := matchQuery.FindStringSubmatch(line)
	if m == nil {
		return inference.Statement{}, false
	}
	kind, _ := inference.ParseKind(m[1])

	subject, predicate, ok := splitNouns(m[2], known)
	if !ok {
		return inference.Statement{}, false
	}
	return inference.Statement{Kind: kind, Subject: subject, Predicate: predicate}, true
}

// splitNouns divides a phrase into subject and predicate, preferring the
// split where both halves are known nouns and falling back to the last word
// as predicate.
func splitNouns(phrase string, known func(string) bool) (string, string, bool) {
	words := strings.Fields(phrase)
	if len(words) < 2 {
		return "", "", false
	}

	for i := 1; i < len(words); i++ {
		subject := strings.Join(words[:i], " ")
		predicate := strings.Join(words[i:], " ")
		if known(subject) && known(predicate) {
			return subject, predicate, true
		}
	}

	last := len(words) - 1
	return strings.Join(words[:last], " "), words[last], true
}
