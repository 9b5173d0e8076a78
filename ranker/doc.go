// Package ranker orders catalog agents by relevance to a free-text query
// using an external text-generation capability. The contract with the
// remote side is deliberately loose ("return a comma-separated id list
// and nothing else"), so every response is parsed defensively and
// validated against the catalog before it is trusted. Any transport,
// quota or validation failure is converted to ErrUnavailable so callers
// can degrade to local matching.
//
// The vendor SDK adapters live in the openai and anthropic subpackages;
// both satisfy the TextGenerator interface defined here.
package ranker
