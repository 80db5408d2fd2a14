package sections

// RegisterDefaults registers every built-in section type.
func RegisterDefaults(reg *Registry) {
	RegisterHero(reg)
	RegisterImageBanner(reg)
	RegisterFeaturedCollection(reg)
	RegisterRichText(reg)
	RegisterAbout(reg)
	RegisterBridalJourney(reg)
	RegisterTestimonials(reg)
}

// NewDefaultRegistry creates a registry with all built-in sections.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}
