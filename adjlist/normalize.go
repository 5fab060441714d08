// File: normalize.go
// Role: The Loader → Filter → Serializer pipeline.
package adjlist

import (
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvldom/core"
)

// normalizedSuffix is appended (before the extension) by OutputPath.
const normalizedSuffix = "_normalized"

// Normalize loads the adjacency list at inPath, removes every
// degree-zero vertex, and saves the result to outPath.
//
// The pipeline is strictly linear and single-pass; it aborts before
// producing any output on ErrRead, and leaves unspecified partial
// contents at outPath on ErrWrite.
//
// Returns the filtered graph for callers that want to inspect it.
func Normalize(inPath, outPath string) (*core.Graph, error) {
	g, err := Load(inPath)
	if err != nil {
		return nil, err
	}

	g.RemoveIsolated()

	if err = Save(g, outPath); err != nil {
		return nil, err
	}

	return g, nil
}

// OutputPath derives the conventional destination for Normalize by
// inserting "_normalized" before the extension:
//
//	graphs/k5.txt → graphs/k5_normalized.txt
//	k5            → k5_normalized
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + normalizedSuffix + ext
}
