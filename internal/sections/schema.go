package sections

// Field describes one editable value in a section's content map. The design
// editor renders its form controls from these descriptions; the field type
// selects the control (text input, textarea, select, media picker, typography
// panel or repeating list).
type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
	// Items describes the per-item fields of an array field.
	Items []Field `json:"itemSchema,omitempty"`
}

// Field types understood by the editor.
const (
	FieldText       = "text"
	FieldTextarea   = "textarea"
	FieldSelect     = "select"
	FieldImage      = "image"
	FieldTypography = "typography"
	FieldArray      = "array"
)
