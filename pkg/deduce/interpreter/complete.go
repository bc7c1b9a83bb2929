package interpreter

import (
	"sort"
	"strings"
)

var keywords = []string{"all", "no", "some", "are", "why", "help", "nouns"}

// Complete returns keywords and known nouns that extend the last word of
// prefix, sorted.
func (in *Interpreter) Complete(prefix string) []string {
	in.mu.Lock()
	nouns := in.reasoner.Nouns()
	in.mu.Unlock()

	word := strings.ToLower(prefix)
	if i := strings.LastIndexAny(word, " \t"); i >= 0 {
		word = word[i+1:]
	}

	seen := make(map[string]bool)
	var hits []string
	for _, candidate := range append(append([]string{}, keywords...), nouns...) {
		if seen[candidate] || !strings.HasPrefix(candidate, word) {
			continue
		}
		seen[candidate] = true
		hits = append(hits, candidate)
	}

	sort.Strings(hits)
	return hits
}
