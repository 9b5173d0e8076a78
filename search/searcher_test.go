package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohithgowdak/ninexta/catalog"
	"github.com/mohithgowdak/ninexta/ranker"
)

// stubRanker lets tests script the remote ranking outcome.
type stubRanker struct {
	result []catalog.Agent
	err    error
	calls  int
}

func (s *stubRanker) Rank(_ context.Context, _ string, _ []catalog.Agent) ([]catalog.Agent, error) {
	s.calls++
	return s.result, s.err
}

// blockingRanker waits for context cancellation, simulating a hung remote.
type blockingRanker struct{}

func (blockingRanker) Rank(ctx context.Context, _ string, _ []catalog.Agent) ([]catalog.Agent, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func searchCatalog() []catalog.Agent {
	return []catalog.Agent{
		{ID: "1", Name: "WriteBot", Description: "writing assistant", Categories: []string{"Writing"}},
		{ID: "2", Name: "CodeAssist", Description: "coding assistant", Categories: []string{"Coding"}},
	}
}

func TestSearch_EmptyQueryShortCircuits(t *testing.T) {
	rk := &stubRanker{err: ranker.ErrUnavailable}
	s := New(func(o *Options) { o.Ranker = rk })
	c := searchCatalog()

	got := s.Search(context.Background(), "", c)
	assert.Equal(t, c, got)
	assert.Zero(t, rk.calls, "ranker must not be consulted for an empty query")
}

func TestSearch_RemoteOrderWins(t *testing.T) {
	c := searchCatalog()
	rk := &stubRanker{result: []catalog.Agent{c[1], c[0]}}
	s := New(func(o *Options) { o.Ranker = rk })

	got := s.Search(context.Background(), "assistant", c)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func TestSearch_UnavailableFallsBackToMatcher(t *testing.T) {
	c := searchCatalog()
	rk := &stubRanker{err: ranker.ErrUnavailable}
	s := New(func(o *Options) { o.Ranker = rk })

	got := s.Search(context.Background(), "coding", c)
	assert.Equal(t, Match("coding", c), got)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSearch_EmptyRemoteResultFallsBack(t *testing.T) {
	c := searchCatalog()
	rk := &stubRanker{result: []catalog.Agent{}}
	s := New(func(o *Options) { o.Ranker = rk })

	got := s.Search(context.Background(), "writing", c)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestSearch_NilRankerUsesMatcher(t *testing.T) {
	s := New()
	got := s.Search(context.Background(), "coding", searchCatalog())
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSearch_TimeoutDegradesToMatcher(t *testing.T) {
	c := searchCatalog()
	s := New(func(o *Options) {
		o.Ranker = blockingRanker{}
		o.Timeout = 10 * time.Millisecond
	})

	start := time.Now()
	got := s.Search(context.Background(), "coding", c)
	assert.Less(t, time.Since(start), time.Second)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSearch_UnmatchedQueryYieldsEmpty(t *testing.T) {
	s := New()
	got := s.Search(context.Background(), "no such thing", searchCatalog())
	assert.Empty(t, got)
}
