// Package search is the entry point of the query pipeline: it attempts
// remote ranking, validates the outcome and degrades to a deterministic
// local substring match whenever the remote side is unavailable or
// unusable. From the caller's perspective Search never fails; the only
// user-visible failure mode is silently coarser matching.
package search
