// Package logging provides a minimal logging interface and adapters for
// the agent directory.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the search pipeline and HTTP server use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, library embedding)
//   - DirectoryLogger with contextual helpers and domain specific
//     logging for ranker calls and search runs
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
