package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownTag is returned when a lookup references a tag no field declares.
// The form schema is fixed at build time, so hitting this outside of
// construction-time validation indicates a schema/rule mismatch, not an
// operator mistake.
var ErrUnknownTag = errors.New("unknown field tag")

// Registry is the ordered collection of fields and the single source of
// truth for the form state. Field order is fixed after construction and is
// used for display only; all cross-field relationships are declared by tag.
type Registry struct {
	fields []*Field
	byTag  map[string]*Field
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]*Field)}
}

// Add appends a field and returns its stable index. Non-header fields must
// carry a tag that no earlier field uses.
func (r *Registry) Add(f Field) (int, error) {
	if f.Kind != KindHeader {
		if f.Tag == "" {
			return 0, fmt.Errorf("field %q has no tag", f.Label)
		}
		if _, dup := r.byTag[f.Tag]; dup {
			return 0, fmt.Errorf("duplicate field tag %q", f.Tag)
		}
	}
	fld := f
	r.fields = append(r.fields, &fld)
	if fld.Tag != "" {
		r.byTag[fld.Tag] = &fld
	}
	return len(r.fields) - 1, nil
}

// AddDropdown appends an option field, selecting opts[def] and mirroring its
// label into the field's value.
func (r *Registry) AddDropdown(f Field, opts []Option, def int) (int, error) {
	if len(opts) == 0 {
		return 0, fmt.Errorf("dropdown %q has no options", f.Tag)
	}
	if def < 0 || def >= len(opts) {
		return 0, fmt.Errorf("dropdown %q default index %d out of range [0,%d)", f.Tag, def, len(opts))
	}
	f.Options = opts
	f.Selected = def
	f.Value = opts[def].Label
	return r.Add(f)
}

// Len returns the number of fields, headers included.
func (r *Registry) Len() int { return len(r.fields) }

// At returns the field at index i. The index must come from Add or the
// navigator; out-of-range access is a caller bug and panics like any slice.
func (r *Registry) At(i int) *Field { return r.fields[i] }

// Lookup finds a field by tag.
func (r *Registry) Lookup(tag string) (*Field, bool) {
	f, ok := r.byTag[tag]
	return f, ok
}

// Value returns the field's current value, or "" when the tag is unknown.
func (r *Registry) Value(tag string) string {
	if f, ok := r.byTag[tag]; ok {
		return f.Value
	}
	return ""
}

// SelectedValue returns the serialized value of the tag's current selection,
// or "" when the tag is unknown or the field is not a dropdown.
func (r *Registry) SelectedValue(tag string) string {
	if f, ok := r.byTag[tag]; ok {
		return f.SelectedValue()
	}
	return ""
}

// SetValue replaces a free-text field's value.
func (r *Registry) SetValue(tag, value string) error {
	f, ok := r.byTag[tag]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	if f.IsDropdown() {
		return fmt.Errorf("field %q is a dropdown; use SetSelected", tag)
	}
	f.Value = value
	return nil
}

// SetSelected changes a dropdown's selection and keeps its value synchronized
// with the selected option's label.
func (r *Registry) SetSelected(tag string, index int) error {
	f, ok := r.byTag[tag]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	return r.selectIndex(f, index)
}

// SetValueAt is SetValue addressed by field index, for callers holding a
// cursor position rather than a tag.
func (r *Registry) SetValueAt(i int, value string) error {
	f := r.fields[i]
	if f.Kind == KindHeader {
		return fmt.Errorf("field %q is a header", f.Label)
	}
	if f.IsDropdown() {
		return fmt.Errorf("field %q is a dropdown; use SetSelectedAt", f.Tag)
	}
	f.Value = value
	return nil
}

// SetSelectedAt is SetSelected addressed by field index.
func (r *Registry) SetSelectedAt(i, index int) error {
	return r.selectIndex(r.fields[i], index)
}

func (r *Registry) selectIndex(f *Field, index int) error {
	if !f.IsDropdown() {
		return fmt.Errorf("field %q is not a dropdown", f.Tag)
	}
	if index < 0 || index >= len(f.Options) {
		return fmt.Errorf("field %q selection %d out of range [0,%d)", f.Tag, index, len(f.Options))
	}
	f.Selected = index
	f.Value = f.Options[index].Label
	return nil
}
