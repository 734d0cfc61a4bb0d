// Package render converts the structured prioritization report into
// concrete output formats.
package render

import (
	"fmt"

	"github.com/QTest-hq/autoprio/internal/report"
)

// Renderer produces one output format from a report.
type Renderer interface {
	// Name returns the renderer name (e.g., "text", "markdown", "csv")
	Name() string

	// FileExtension returns the output file extension (e.g., ".md")
	FileExtension() string

	// Render produces the full document for a report
	Render(rep *report.Report) (string, error)
}

// Registry holds all available renderers
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a registry with all built-in renderers
func NewRegistry() *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer),
	}

	r.Register(&TextRenderer{})
	r.Register(&MarkdownRenderer{})
	r.Register(&HTMLRenderer{})
	r.Register(&CSVRenderer{})
	r.Register(&DocRenderer{})

	return r
}

// Register adds a renderer to the registry
func (r *Registry) Register(rr Renderer) {
	r.renderers[rr.Name()] = rr
}

// Get returns a renderer by name
func (r *Registry) Get(name string) (Renderer, error) {
	rr, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("renderer not found: %s", name)
	}
	return rr, nil
}

// List returns all registered renderer names
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	return names
}
