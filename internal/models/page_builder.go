package models

// AddSectionRequest appends a new section of the given registry type to the
// page currently loaded in an editor session.
type AddSectionRequest struct {
	Type string `json:"type" binding:"required"`
}

// UpdateSectionContentRequest replaces a single content field on a section.
type UpdateSectionContentRequest struct {
	SectionID string      `json:"section_id" binding:"required"`
	Field     string      `json:"field" binding:"required"`
	Value     interface{} `json:"value"`
}

// UpdateSectionSettingsRequest merges style settings into a section.
type UpdateSectionSettingsRequest struct {
	SectionID string                 `json:"section_id" binding:"required"`
	Settings  map[string]interface{} `json:"settings" binding:"required"`
}

// UpdateSectionRawRequest carries a raw JSON blob pasted into the editor's
// JSON mode for a single content field. Malformed payloads are ignored.
type UpdateSectionRawRequest struct {
	SectionID string `json:"section_id" binding:"required"`
	Field     string `json:"field" binding:"required"`
	RawJSON   string `json:"raw_json"`
}

// ReorderSectionRequest moves the section at index From to index To.
type ReorderSectionRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ToggleSectionRequest flips a section's hidden flag.
type ToggleSectionRequest struct {
	SectionID string `json:"section_id" binding:"required"`
}

// RemoveSectionRequest deletes a section from the working copy.
type RemoveSectionRequest struct {
	SectionID string `json:"section_id" binding:"required"`
}

// SelectSectionRequest is posted by a preview frame when the user clicks a
// section; it is relayed to editor event subscribers.
type SelectSectionRequest struct {
	SectionID string `json:"id" binding:"required"`
}

// SectionTypeConfig describes one section type for the builder's add menu
// and property panel.
type SectionTypeConfig struct {
	Type   string      `json:"type"`
	Name   string      `json:"name"`
	Icon   string      `json:"icon,omitempty"`
	Fields interface{} `json:"fields"`
}

// PageBuilderConfig is served to the editor UI on load. The animation and
// hover catalogs are plain data; the storefront plays them client side.
type PageBuilderConfig struct {
	AvailableSections []SectionTypeConfig `json:"available_sections"`
	PaddingOptions    []string            `json:"padding_options"`
	AnimationPresets  interface{}         `json:"animation_presets"`
	HoverEffects      interface{}         `json:"hover_effects"`
}
