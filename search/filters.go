package search

import "github.com/mohithgowdak/ninexta/catalog"

// Filters narrow a result list after matching/ranking. Category is an
// exact tag match (unlike the substring query); MinRating keeps agents
// whose derived rating is at least the given value. Zero values disable
// the respective filter.
type Filters struct {
	Category  string
	MinRating float64
}

// Apply returns the order-preserving subsequence of agents passing all
// active filters.
func Apply(agents []catalog.Agent, f Filters) []catalog.Agent {
	if f.Category == "" && f.MinRating == 0 {
		return agents
	}
	out := make([]catalog.Agent, 0, len(agents))
	for _, a := range agents {
		if f.Category != "" && !hasCategory(a, f.Category) {
			continue
		}
		if a.Rating < f.MinRating {
			continue
		}
		out = append(out, a)
	}
	return out
}

func hasCategory(a catalog.Agent, category string) bool {
	for _, c := range a.Categories {
		if c == category {
			return true
		}
	}
	return false
}
