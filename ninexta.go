// Package ninexta provides a high-level façade over the agent directory:
// a validated catalog store plus the search pipeline (remote LLM ranking
// with a deterministic local fallback). Most applications interact with
// this package by:
//  1. Creating a Directory via New() (optionally overriding the catalog,
//     the ranking backend, the timeout or the logger)
//  2. Calling Search for ranked results and SubmitReview for reviews
//
// All defaults are safe for local development and testing: the built-in
// demo catalog, no remote ranking and a no-op logger. Deployments supply
// a real catalog, an LLM-backed ranker and a structured logger.
package ninexta

import (
	"context"
	"time"

	"github.com/mohithgowdak/ninexta/catalog"
	"github.com/mohithgowdak/ninexta/logging"
	"github.com/mohithgowdak/ninexta/ranker"
	"github.com/mohithgowdak/ninexta/search"
)

// Options configure the Directory instance.
type Options struct {
	// Agents is the initial catalog. Defaults to the built-in demo set.
	Agents []catalog.Agent

	// Ranker is the remote ranking capability. Nil means every search
	// uses only the local substring matcher.
	Ranker ranker.Ranker

	// SearchTimeout caps one remote ranking attempt.
	SearchTimeout time.Duration

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Directory is the high-level façade aggregating the catalog store and
// the search pipeline.
type Directory struct {
	store    catalog.Store
	searcher *search.Searcher
	logger   logging.Logger
}

// New creates a Directory with optional overrides. Catalog validation
// failures (duplicate ids, out-of-range seeded review ratings) are fatal
// configuration errors and fail construction.
func New(optFns ...func(o *Options)) (*Directory, error) {
	opts := Options{
		Agents:        catalog.SeedAgents(),
		SearchTimeout: search.DefaultTimeout,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	store, err := catalog.NewInMemoryStore(opts.Agents)
	if err != nil {
		return nil, err
	}

	searcher := search.New(func(o *search.Options) {
		o.Ranker = opts.Ranker
		o.Timeout = opts.SearchTimeout
		o.Logger = opts.Logger
	})

	return &Directory{store: store, searcher: searcher, logger: opts.Logger}, nil
}

// Store exposes the underlying catalog store, e.g. for transports.
func (d *Directory) Store() catalog.Store { return d.store }

// Searcher exposes the underlying search pipeline.
func (d *Directory) Searcher() *search.Searcher { return d.searcher }

// Agents returns the full catalog in load order.
func (d *Directory) Agents() []catalog.Agent { return d.store.Agents() }

// Agent returns one agent by id.
func (d *Directory) Agent(id string) (catalog.Agent, error) { return d.store.Agent(id) }

// Categories returns the sorted distinct category tags of the catalog.
func (d *Directory) Categories() []string { return d.store.Categories() }

// Search runs the query pipeline over the current catalog.
func (d *Directory) Search(ctx context.Context, query string) []catalog.Agent {
	return d.searcher.Search(ctx, query, d.store.Agents())
}

// SubmitReview appends a review to an agent and returns the updated
// agent with its recomputed rating.
func (d *Directory) SubmitReview(agentID, author string, rating int, comment string) (catalog.Agent, error) {
	return d.store.AddReview(agentID, author, rating, comment)
}
