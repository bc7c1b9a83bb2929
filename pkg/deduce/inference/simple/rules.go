package simple

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/cognicore/deduce/pkg/deduce/inference"
	"github.com/cognicore/deduce/pkg/deduce/internalerr"
)

var statementPattern = regexp.MustCompile(`(?i)^(all|no|some)\s+(.+?)\s+are\s+(.+?)\s*\.?$`)

// LoadRules teaches statements from a rule file, one per line.
// Format:
//
//	# comments
//	all dogs are mammals
//	no cats are dogs.
//	some animals are brown things
//
// Nouns are added as needed.
func (e *Engine) LoadRules(rules string) error {
	scanner := bufio.NewScanner(strings.NewReader(rules))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s, err := parseStatement(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		for _, n := range []string{s.Subject, s.Predicate} {
			if err := e.AddNoun(n); err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
		}
		if err := e.Teach(s); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

// parseStatement parses "all|no|some X are Y" with an optional period
func parseStatement(line string) (inference.Statement, error) {
	m := statementPattern.FindStringSubmatch(line)
	if m == nil {
		return inference.Statement{}, fmt.Errorf("%w: expected \"all|no|some X are Y\": %s", internalerr.ErrInvalidInput, line)
	}

	kind, _ := inference.ParseKind(m[1])
	return inference.Statement{
		Kind:      kind,
		Subject:   strings.TrimSpace(m[2]),
		Predicate: strings.TrimSpace(m[3]),
	}, nil
}
