// Package lens provides independent reinterpretation bundles for
// clinician reflections. Each lens pairs its own marker vocabulary
// with a threshold classification and templated narrative, so the
// same text can be read several ways. Lenses are registered under
// stable names and produce a common report envelope for transport.
package lens

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLens indicates a lookup for a lens name that is not registered.
var ErrUnknownLens = errors.New("unknown lens")

// Section is a titled list of narrative items within a report.
type Section struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Report is the generic envelope every lens produces.
type Report struct {
	Lens           string             `json:"lens"`
	Classification string             `json:"classification"`
	Confidence     float64            `json:"confidence,omitempty"`
	Scores         map[string]float64 `json:"scores,omitempty"`
	Sections       []Section          `json:"sections"`
}

// ViewOptions carries per-view parameters. Only the cultural bridge
// lens uses Culture; other lenses ignore it.
type ViewOptions struct {
	Culture string
}

// Lens reinterprets reflection text under one taxonomy.
type Lens interface {
	// Name returns the stable registry name.
	Name() string

	// View analyzes text and returns the generic report envelope.
	View(text string, opts ViewOptions) (*Report, error)
}

// Registry holds named lenses.
type Registry struct {
	lenses map[string]Lens
}

// NewRegistry creates a registry from the given lenses.
func NewRegistry(lenses ...Lens) *Registry {
	r := &Registry{lenses: make(map[string]Lens, len(lenses))}
	for _, l := range lenses {
		r.lenses[l.Name()] = l
	}
	return r
}

// Get returns the lens registered under name.
func (r *Registry) Get(name string) (Lens, error) {
	l, ok := r.lenses[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLens, name)
	}
	return l, nil
}

// Names lists registered lens names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.lenses))
	for name := range r.lenses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
