// Package adjlist error definitions.
package adjlist

import "errors"

// Sentinel errors for adjacency-list I/O. Wrapped causes are attached
// with %w; match with errors.Is.
var (
	// ErrRead is returned when the source cannot be opened or read.
	ErrRead = errors.New("adjlist: cannot read source")

	// ErrWrite is returned when the destination cannot be created or written.
	ErrWrite = errors.New("adjlist: cannot write destination")
)
