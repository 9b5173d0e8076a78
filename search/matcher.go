package search

import (
	"strings"

	"github.com/mohithgowdak/ninexta/catalog"
)

// Match returns the order-preserving subsequence of agents for which the
// query (case-insensitive, whitespace-trimmed) is a substring of the
// name, description, any category or any capability. There is no
// tokenization, stemming or scoring; a binary hit is the whole signal.
// The empty query matches everything.
func Match(query string, agents []catalog.Agent) []catalog.Agent {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return agents
	}
	out := make([]catalog.Agent, 0, len(agents))
	for _, a := range agents {
		if matches(a, q) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a catalog.Agent, q string) bool {
	if strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Description), q) {
		return true
	}
	for _, c := range a.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	for _, c := range a.Capabilities {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}
