package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ Store = (*InMemoryStore)(nil)

func testAgents() []Agent {
	return []Agent{
		{
			ID:          "1",
			Name:        "WriteBot",
			Description: "AI-powered writing assistant",
			Categories:  []string{"Writing"},
			Reviews: []Review{
				{ID: "101", Rating: 5, Comment: "great"},
				{ID: "102", Rating: 3, Comment: "fine"},
			},
		},
		{
			ID:          "2",
			Name:        "CodeAssist",
			Description: "AI coding assistant",
			Categories:  []string{"Coding"},
		},
	}
}

func TestNewInMemoryStore_DuplicateID(t *testing.T) {
	_, err := NewInMemoryStore([]Agent{{ID: "1", Name: "a"}, {ID: "1", Name: "b"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate agent id")
}

func TestNewInMemoryStore_SeededReviewOutOfRange(t *testing.T) {
	_, err := NewInMemoryStore([]Agent{{
		ID:      "1",
		Reviews: []Review{{ID: "r1", Rating: 6, Comment: "bad data"}},
	}})
	require.Error(t, err)
}

func TestNewInMemoryStore_RecomputesDerivedRating(t *testing.T) {
	// Seeded aggregate ratings are ignored; the mean of the review list wins.
	s, err := NewInMemoryStore([]Agent{{
		ID:     "1",
		Rating: 4.7,
		Reviews: []Review{
			{ID: "101", Rating: 5, Comment: "great"},
			{ID: "102", Rating: 4, Comment: "ok"},
		},
	}})
	require.NoError(t, err)
	a, err := s.Agent("1")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, a.Rating, 1e-9)
}

func TestInMemoryStore_AgentsPreservesOrderAndIsolation(t *testing.T) {
	s, err := NewInMemoryStore(testAgents())
	require.NoError(t, err)

	got := s.Agents()
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	// mutation safety (returned agents are deep copies)
	got[0].Categories[0] = "changed"
	got[0].Reviews[0].Comment = "changed"
	again, _ := s.Agent("1")
	assert.Equal(t, "Writing", again.Categories[0])
	assert.Equal(t, "great", again.Reviews[0].Comment)
}

func TestInMemoryStore_AgentNotFound(t *testing.T) {
	s, err := NewInMemoryStore(testAgents())
	require.NoError(t, err)
	_, err = s.Agent("missing")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestInMemoryStore_Categories(t *testing.T) {
	s, err := NewInMemoryStore(testAgents())
	require.NoError(t, err)
	assert.Equal(t, []string{"Coding", "Writing"}, s.Categories())
}

func TestAddReview_RecomputesMean(t *testing.T) {
	s, err := NewInMemoryStore(testAgents())
	require.NoError(t, err)

	before, _ := s.Agent("1")
	assert.InDelta(t, 4.0, before.Rating, 1e-9) // mean of [5,3]

	updated, err := s.AddReview("1", "Jane", 5, "excellent")
	require.NoError(t, err)
	require.Len(t, updated.Reviews, 3)
	// full precision, no rounding in the stored value
	assert.InDelta(t, 13.0/3.0, updated.Rating, 1e-9)

	last := updated.Reviews[2]
	assert.NotEmpty(t, last.ID)
	assert.Equal(t, "Jane", last.Author)
	assert.False(t, last.Date.IsZero())
}

func TestAddReview_Validation(t *testing.T) {
	s, err := NewInMemoryStore(testAgents())
	require.NoError(t, err)

	tests := []struct {
		name    string
		rating  int
		comment string
	}{
		{"rating below range", 0, "ok"},
		{"rating above range", 6, "ok"},
		{"empty comment", 3, ""},
		{"whitespace comment", 3, "   \t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddReview("1", "", tt.rating, tt.comment)
			var invalid *InvalidReviewError
			require.True(t, errors.As(err, &invalid), "expected InvalidReviewError, got %v", err)
		})
	}

	// a minimal valid review passes
	_, err = s.AddReview("1", "", 3, "ok")
	assert.NoError(t, err)
}

func TestAddReview_UnknownAgent(t *testing.T) {
	s, err := NewInMemoryStore(testAgents())
	require.NoError(t, err)
	_, err = s.AddReview("missing", "", 3, "ok")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	s, err := NewInMemoryStore(testAgents())
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AddReview("2", "", 4, "solid"); err != nil {
				t.Errorf("add review error: %v", err)
			}
			if _, err := s.Agent("2"); err != nil {
				t.Errorf("get error: %v", err)
			}
			_ = s.Agents()
			_ = s.Categories()
		}()
	}
	wg.Wait()

	a, _ := s.Agent("2")
	if len(a.Reviews) != 25 {
		t.Fatalf("expected 25 reviews after concurrent appends, got %d", len(a.Reviews))
	}
	assert.InDelta(t, 4.0, a.Rating, 1e-9)
}
