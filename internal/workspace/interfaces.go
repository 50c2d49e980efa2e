// Package workspace defines the boundary to the collaborating services this
// tool drives but does not implement: text search, semantic code analysis,
// and file mutation. Only the interfaces live here, plus the explicit
// analysis Session lifecycle.
package workspace

import "context"

// SearchOptions controls a text search over a directory tree.
type SearchOptions struct {
	Regex         bool
	CaseSensitive bool
	MaxResults    int
	FilePattern   string
}

// SearchMatch is one hit from a search.
type SearchMatch struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Content string `json:"content"`
}

// Searcher is the file-content search collaborator.
type Searcher interface {
	Search(ctx context.Context, rootPath, query string, opts SearchOptions) ([]SearchMatch, error)
}

// Symbol is one symbol returned by the analysis collaborator.
type Symbol struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Path string `json:"path"`
	Line int    `json:"line"`
}

// Analyzer is the semantic code-analysis collaborator, backed by an external
// compiler toolchain.
type Analyzer interface {
	IsLoaded() bool
	FindSymbols(ctx context.Context, name string) ([]Symbol, error)
	FindReferences(ctx context.Context, name string) ([]Symbol, error)
	Dependencies(ctx context.Context) (map[string][]string, error)
}

// ContentWriter is the file-mutation collaborator. The merge workflow uses it
// for exactly one thing: writing caller-supplied resolved content during
// manual conflict resolution.
type ContentWriter interface {
	WriteResolvedContent(path string, content string) error
}
