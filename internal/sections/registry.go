package sections

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"sheweds-backend/internal/models"
)

// RenderContext exposes the minimal capabilities required by section
// renderers.
type RenderContext interface {
	// SanitizeHTML cleans potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
}

// RenderData carries the site-wide documents a renderer may draw on. Only
// the catalog sections consume products and only the hero consumes slides;
// everything else renders from its own content alone.
type RenderData struct {
	Products   []models.Product
	HeroSlides []models.HeroSlide
}

// Renderer turns one section of a page config into an HTML fragment.
type Renderer func(ctx RenderContext, prefix string, section models.Section, data RenderData) string

// Descriptor bundles a section renderer with the editing schema the design
// editor uses to build its form for the type.
type Descriptor struct {
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Fields   []Field  `json:"fields"`
	Renderer Renderer `json:"-"`
}

// Registry maps section types to their descriptors. Lookups are exact: type
// keys are case sensitive and must match the stored page configs.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

// NewRegistry creates an empty section registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register adds a descriptor, returning an error when it is unusable.
func (r *Registry) Register(desc *Descriptor) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if desc == nil {
		return fmt.Errorf("descriptor is nil")
	}

	sectionType := strings.TrimSpace(desc.Type)
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if desc.Renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.descriptors == nil {
		r.descriptors = make(map[string]*Descriptor)
	}
	r.descriptors[sectionType] = desc
	return nil
}

// MustRegister registers the descriptor and panics if registration fails.
// Registration happens at startup, so a bad descriptor is a programming
// error.
func (r *Registry) MustRegister(desc *Descriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer for a section type if one is registered.
func (r *Registry) Get(sectionType string) (Renderer, bool) {
	desc, ok := r.Descriptor(sectionType)
	if !ok {
		return nil, false
	}
	return desc.Renderer, true
}

// Descriptor retrieves the full descriptor for a section type.
func (r *Registry) Descriptor(sectionType string) (*Descriptor, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = strings.TrimSpace(sectionType)
	if sectionType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[sectionType]
	return desc, ok
}

// Descriptors returns every registered descriptor sorted by type, for the
// design editor's add-section palette.
func (r *Registry) Descriptors() []*Descriptor {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		out = append(out, desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Types returns the registered type keys sorted alphabetically.
func (r *Registry) Types() []string {
	descs := r.Descriptors()
	types := make([]string, 0, len(descs))
	for _, desc := range descs {
		types = append(types, desc.Type)
	}
	return types
}

// Clone creates a copy of the registry with the same descriptors.
func (r *Registry) Clone() *Registry {
	cloned := NewRegistry()
	if r == nil {
		return cloned
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for key, desc := range r.descriptors {
		cloned.descriptors[key] = desc
	}
	return cloned
}
