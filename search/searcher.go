package search

import (
	"context"
	"strings"
	"time"

	"github.com/mohithgowdak/ninexta/catalog"
	"github.com/mohithgowdak/ninexta/logging"
	"github.com/mohithgowdak/ninexta/ranker"
)

// DefaultTimeout bounds one remote ranking attempt. Unbounded external
// latency is an availability risk; expiry degrades to local matching.
const DefaultTimeout = 10 * time.Second

// Options configure a Searcher.
type Options struct {
	// Ranker is the remote ranking capability. Nil disables remote
	// ranking entirely and every query uses the local matcher.
	Ranker ranker.Ranker

	// Timeout caps a single ranking attempt.
	Timeout time.Duration

	// Logger receives pipeline observability events.
	Logger logging.Logger
}

// Searcher runs the query pipeline. Each Search call is one sequential
// request: format prompt, await the remote call, parse, validate, fall
// back. Concurrent calls are independent; no coalescing or supersession
// happens here, so a later-issued search may complete before an earlier
// one. Displaying only the latest result is the caller's concern.
type Searcher struct {
	ranker  ranker.Ranker
	timeout time.Duration
	logger  logging.Logger
}

// New creates a Searcher with optional overrides.
func New(optFns ...func(o *Options)) *Searcher {
	opts := Options{
		Timeout: DefaultTimeout,
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Searcher{ranker: opts.Ranker, timeout: opts.Timeout, logger: opts.Logger}
}

// Search returns the agents relevant to query, best order first. It is a
// total function: a trimmed-empty query returns the catalog verbatim,
// remote ranking is used when it yields a non-empty validated result,
// and any ranking failure falls back to the local substring matcher.
// The catalog itself is never mutated.
func (s *Searcher) Search(ctx context.Context, query string, agents []catalog.Agent) []catalog.Agent {
	if strings.TrimSpace(query) == "" {
		return agents
	}

	if s.ranker != nil {
		rctx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			rctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		start := time.Now()
		ranked, err := s.ranker.Rank(rctx, query, agents)
		if err == nil && len(ranked) > 0 {
			s.logger.Debug("remote ranking succeeded",
				"query", query, "result_count", len(ranked), "duration", time.Since(start))
			return ranked
		}
		if err != nil {
			s.logger.Warn("remote ranking unavailable, using local matcher",
				"query", query, "duration", time.Since(start), "error", err)
		}
	}

	return Match(query, agents)
}
