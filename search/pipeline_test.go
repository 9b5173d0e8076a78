package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohithgowdak/ninexta/ranker"
)

// End-to-end pipeline: LLM ranker over a mock generator, orchestrated by
// the searcher.

func TestPipeline_RemoteRankingOrdersResults(t *testing.T) {
	c := searchCatalog()
	gen := &ranker.MockGenerator{Response: "2, 1"}
	s := New(func(o *Options) { o.Ranker = ranker.NewLLMRanker(gen) })

	got := s.Search(context.Background(), "coding", c)
	require.Len(t, got, 2)
	assert.Equal(t, "CodeAssist", got[0].Name)
	assert.Equal(t, "WriteBot", got[1].Name)
}

func TestPipeline_UnusableResponseFallsBackToSubstring(t *testing.T) {
	c := searchCatalog()
	gen := &ranker.MockGenerator{Response: "9"}
	s := New(func(o *Options) { o.Ranker = ranker.NewLLMRanker(gen) })

	got := s.Search(context.Background(), "coding", c)
	require.Len(t, got, 1)
	assert.Equal(t, "CodeAssist", got[0].Name)
}
