// Package catalog holds the agent directory's data model and the Store
// abstraction over it. The catalog is populated once at startup and is
// read-only from the search pipeline's perspective; the only mutation it
// supports is appending reviews, which recomputes the agent's derived
// rating. Implementations here are process-local; swap in a durable
// backend behind the Store interface without touching calling code.
package catalog
