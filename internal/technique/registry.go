package technique

import "sudoku-core/internal/sudokugrid"

// Descriptor holds metadata about one detector, grounded on the teacher's
// TechniqueDescriptor shape but trimmed to this domain's fixed 13-entry
// table (spec section 4.3).
type Descriptor struct {
	Slug     string
	Weight   float64
	Detector Detector
	Enabled  bool
}

// Registry is the fixed, ordered set of detectors consulted by GetHint.
// Order defines priority: the first detector to fire wins. Techniques can
// be disabled by slug for isolation testing, same as the teacher's
// technique_registry.go.
type Registry struct {
	order []*Descriptor
	bySlug map[string]*Descriptor
}

// NewRegistry builds the registry with every technique enabled, in the
// fixed priority order from easiest to hardest.
func NewRegistry() *Registry {
	r := &Registry{bySlug: make(map[string]*Descriptor)}
	r.register("naked_single", 1.0, DetectNakedSingle)
	r.register("hidden_single", 7.0, DetectHiddenSingle)
	r.register("naked_pair", 9.0, nakedSubsetDetector(2))
	r.register("pointing_pair", 12.0, DetectPointingPair)
	r.register("box_line_reduction", 14.0, DetectBoxLineReduction)
	r.register("hidden_pair", 18.0, hiddenSubsetDetector(2))
	r.register("naked_triple", 22.0, nakedSubsetDetector(3))
	r.register("hidden_triple", 28.0, hiddenSubsetDetector(3))
	r.register("naked_quad", 35.0, nakedSubsetDetector(4))
	r.register("hidden_quad", 42.0, hiddenSubsetDetector(4))
	r.register("x_wing", 46.0, DetectXWing)
	r.register("y_wing", 50.0, DetectYWing)
	r.register("simple_coloring", 54.0, DetectSimpleColoring)
	return r
}

func (r *Registry) register(slug string, weight float64, d Detector) {
	desc := &Descriptor{Slug: slug, Weight: weight, Detector: d, Enabled: true}
	r.order = append(r.order, desc)
	r.bySlug[slug] = desc
}

// SetEnabled toggles a technique by slug. It reports false if the slug is
// unknown.
func (r *Registry) SetEnabled(slug string, enabled bool) bool {
	d, ok := r.bySlug[slug]
	if !ok {
		return false
	}
	d.Enabled = enabled
	return true
}

// Descriptors returns the registry's techniques in priority order.
func (r *Registry) Descriptors() []*Descriptor {
	return r.order
}

// GetHint consults detectors in priority order and returns the first
// non-nil result, with its weight filled in from the registry (spec
// section 4.3: "order defines priority ... and the weight assigned to
// that step").
func (r *Registry) GetHint(g *sudokugrid.Grid) *Hint {
	for _, d := range r.order {
		if !d.Enabled {
			continue
		}
		if hint := d.Detector(g); hint != nil {
			hint.Technique = d.Slug
			hint.Weight = d.Weight
			return hint
		}
	}
	return nil
}

// GetHint builds a fresh registry with every technique enabled and
// consults it. Callers that need to disable techniques should build their
// own Registry via NewRegistry instead.
func GetHint(g *sudokugrid.Grid) *Hint {
	return NewRegistry().GetHint(g)
}
