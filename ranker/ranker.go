package ranker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mohithgowdak/ninexta/catalog"
	"github.com/mohithgowdak/ninexta/logging"
)

// ErrUnavailable indicates the remote ranking capability could not
// produce a usable result: unreachable, rejected the request, or returned
// a response with no catalog id overlap. Callers are expected to fall
// back to local matching; this error never reaches end users.
var ErrUnavailable = errors.New("ranker unavailable")

// Ranker orders a catalog by relevance to a query. The result is a
// permutation of a subset of the input; ranking never invents records.
type Ranker interface {
	Rank(ctx context.Context, query string, agents []catalog.Agent) ([]catalog.Agent, error)
}

// Info contains metadata about a text generation backend.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// TextGenerator is the single-shot generation boundary: one prompt in,
// the entire completion out as opaque text. No retry, no streaming.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Info() Info
}

// Options configure the LLM ranker.
type Options struct {
	Logger logging.Logger
}

// LLMRanker implements Ranker on top of a TextGenerator. Per call it
// builds one prompt embedding the query and the full catalog, invokes
// the generator exactly once, then parses and validates the response.
type LLMRanker struct {
	gen    TextGenerator
	logger logging.Logger
}

// NewLLMRanker creates a ranker backed by the given text generator.
func NewLLMRanker(gen TextGenerator, optFns ...func(o *Options)) *LLMRanker {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &LLMRanker{gen: gen, logger: opts.Logger}
}

// Rank implements Ranker. Failure modes are collapsed into ErrUnavailable
// so the orchestrator has a single condition to recover from.
func (r *LLMRanker) Rank(ctx context.Context, query string, agents []catalog.Agent) ([]catalog.Agent, error) {
	prompt, err := BuildPrompt(query, agents)
	if err != nil {
		return nil, fmt.Errorf("%w: building prompt: %v", ErrUnavailable, err)
	}

	text, err := r.gen.GenerateText(ctx, prompt)
	if err != nil {
		info := r.gen.Info()
		r.logger.Warn("ranking generation failed", "provider", info.Provider, "model", info.Name, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	ranked := reorderByIDs(parseIDs(text), agents)
	if len(ranked) == 0 {
		return nil, fmt.Errorf("%w: response contains no catalog ids: %q", ErrUnavailable, text)
	}
	return ranked, nil
}

// parseIDs splits a response on commas and trims each element. No other
// structure is assumed; validation against the catalog happens later.
func parseIDs(text string) []string {
	parts := strings.Split(text, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// reorderByIDs returns the agents whose ids appear among the candidates,
// in candidate order. Unknown candidate ids are dropped and a repeated id
// keeps its first position; the remote capability's stated order is the
// sole ranking signal.
func reorderByIDs(ids []string, agents []catalog.Agent) []catalog.Agent {
	byID := make(map[string]catalog.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]catalog.Agent, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}
