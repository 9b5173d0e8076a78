package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store defines read access to the catalog plus the single mutation the
// directory supports: appending a review. Short method names align with
// the rest of the module's interfaces.
type Store interface {
	Agents() []Agent
	Agent(id string) (Agent, error)
	Categories() []string
	AddReview(agentID, author string, rating int, comment string) (Agent, error)
}

// InMemoryStore is a process-local Store holding the catalog in a slice
// (catalog order is meaningful and must be preserved). It is safe for
// concurrent access and every returned agent is cloned to prevent
// external mutation of internal state.
type InMemoryStore struct {
	mu     sync.RWMutex
	agents []Agent
	index  map[string]int // id -> position in agents
}

// NewInMemoryStore validates and loads the given agents. Duplicate ids
// and out-of-range seeded review ratings are configuration errors and
// fail construction outright. Each agent's Rating is recomputed from its
// reviews so the derived-rating invariant holds from the start.
func NewInMemoryStore(agents []Agent) (*InMemoryStore, error) {
	s := &InMemoryStore{
		agents: make([]Agent, 0, len(agents)),
		index:  make(map[string]int, len(agents)),
	}
	for _, a := range agents {
		if a.ID == "" {
			return nil, fmt.Errorf("agent %q: empty id", a.Name)
		}
		if _, exists := s.index[a.ID]; exists {
			return nil, fmt.Errorf("duplicate agent id %q", a.ID)
		}
		for _, r := range a.Reviews {
			if r.Rating < 1 || r.Rating > 5 {
				return nil, fmt.Errorf("agent %q: review %q: rating %d out of range [1,5]", a.ID, r.ID, r.Rating)
			}
		}
		c := a.Clone()
		c.Rating = meanRating(c.Reviews)
		s.index[c.ID] = len(s.agents)
		s.agents = append(s.agents, c)
	}
	return s, nil
}

// Agents returns the full catalog in load order.
func (s *InMemoryStore) Agents() []Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Agent, len(s.agents))
	for i, a := range s.agents {
		out[i] = a.Clone()
	}
	return out
}

// Agent returns a single agent by id.
func (s *InMemoryStore) Agent(id string) (Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return Agent{}, ErrAgentNotFound
	}
	return s.agents[i].Clone(), nil
}

// Categories returns the sorted set of distinct category tags across the
// catalog, for facet-style filtering.
func (s *InMemoryStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, a := range s.agents {
		for _, c := range a.Categories {
			seen[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// AddReview validates and appends a review to the agent, recomputing the
// derived rating in the same critical section. The updated agent is
// returned as a clone.
func (s *InMemoryStore) AddReview(agentID, author string, rating int, comment string) (Agent, error) {
	if rating < 1 || rating > 5 {
		return Agent{}, &InvalidReviewError{Reason: fmt.Sprintf("rating %d out of range [1,5]", rating)}
	}
	if strings.TrimSpace(comment) == "" {
		return Agent{}, &InvalidReviewError{Reason: "comment must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[agentID]
	if !ok {
		return Agent{}, ErrAgentNotFound
	}
	s.agents[i].Reviews = append(s.agents[i].Reviews, Review{
		ID:      uuid.NewString(),
		Author:  author,
		Rating:  rating,
		Comment: comment,
		Date:    time.Now(),
	})
	s.agents[i].Rating = meanRating(s.agents[i].Reviews)
	return s.agents[i].Clone(), nil
}
