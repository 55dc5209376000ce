package schema

// Kind classifies how a field behaves in the form.
type Kind int

const (
	// KindMandatory fields must be filled in before a document can be produced.
	KindMandatory Kind = iota
	// KindOptional fields may be left blank.
	KindOptional
	// KindHeader rows are section titles. They carry no value, are never
	// selectable, and never appear in the output document.
	KindHeader
)

// String returns a human-readable name for the field kind.
func (k Kind) String() string {
	switch k {
	case KindMandatory:
		return "mandatory"
	case KindOptional:
		return "optional"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Option is one dropdown choice: the label shown to the operator paired with
// the value written into the document.
type Option struct {
	Label string
	Value string
}

// Field is a single configurable setting or section header.
type Field struct {
	// Label is the display name shown to the operator.
	Label string

	// Tag is the logical key used for lookup and document emission.
	// Empty for headers; unique among all other fields.
	Tag string

	Kind Kind

	// Help is the explanation shown for the field while it is focused.
	Help string

	// Value is the current text for free-text fields, or the selected
	// option's label for dropdowns. The two are unified so rendering code
	// never has to special-case the field kind.
	Value string

	// Options is the ordered option set; empty for free-text fields.
	Options []Option

	// Selected indexes Options; meaningless for free-text fields.
	Selected int

	// Hidden is owned by the visibility resolver. It is recomputed after
	// every edit and never set directly by the operator.
	Hidden bool

	// Group identifies the line-button group this field belongs to (1-4),
	// or 0 for ungrouped fields.
	Group int
}

// IsDropdown reports whether the field carries an option set.
func (f *Field) IsDropdown() bool { return len(f.Options) > 0 }

// Selectable reports whether the cursor may land on this field.
func (f *Field) Selectable() bool { return f.Kind != KindHeader && !f.Hidden }

// SelectedValue returns the serialized value of the current selection, or ""
// for free-text fields.
func (f *Field) SelectedValue() string {
	if !f.IsDropdown() {
		return ""
	}
	return f.Options[f.Selected].Value
}
