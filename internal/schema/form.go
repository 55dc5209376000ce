package schema

import "fmt"

// Form couples a registry with its visibility rules so that every edit runs
// the edit -> recompute pipeline. The rule table is validated once here;
// afterwards every tag the rules mention is known to exist.
type Form struct {
	Registry *Registry
	rules    []Rule
}

// NewForm validates the rule table against the registry and returns the form
// with visibility resolved for the initial selections.
func NewForm(reg *Registry, rules []Rule) (*Form, error) {
	if err := ValidateRules(reg, rules); err != nil {
		return nil, err
	}
	f := &Form{Registry: reg, rules: rules}
	f.Recompute()
	return f, nil
}

// Recompute reassigns every field's hidden flag from current selections.
func (f *Form) Recompute() {
	Recompute(f.Registry, f.rules)
}

// SetValue updates a free-text field and recomputes visibility.
func (f *Form) SetValue(tag, value string) error {
	if err := f.Registry.SetValue(tag, value); err != nil {
		return err
	}
	f.Recompute()
	return nil
}

// SetSelected updates a dropdown selection and recomputes visibility.
func (f *Form) SetSelected(tag string, index int) error {
	if err := f.Registry.SetSelected(tag, index); err != nil {
		return err
	}
	f.Recompute()
	return nil
}

// SetValueAt is SetValue addressed by field index.
func (f *Form) SetValueAt(i int, value string) error {
	if err := f.Registry.SetValueAt(i, value); err != nil {
		return err
	}
	f.Recompute()
	return nil
}

// SetSelectedAt is SetSelected addressed by field index.
func (f *Form) SetSelectedAt(i, index int) error {
	if err := f.Registry.SetSelectedAt(i, index); err != nil {
		return err
	}
	f.Recompute()
	return nil
}

// ApplyAnswers applies a tag -> raw value map, as read from an answers file
// or the preferences defaults. Dropdown answers are matched against the
// serialized option value first, then the display label. Visibility is
// recomputed once at the end.
func (f *Form) ApplyAnswers(answers map[string]string) error {
	for tag, raw := range answers {
		fld, ok := f.Registry.Lookup(tag)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTag, tag)
		}
		if fld.IsDropdown() {
			idx := -1
			for i, opt := range fld.Options {
				if opt.Value == raw || opt.Label == raw {
					idx = i
					break
				}
			}
			if idx < 0 {
				return fmt.Errorf("field %q has no option %q", tag, raw)
			}
			if err := f.Registry.SetSelected(tag, idx); err != nil {
				return err
			}
			continue
		}
		if err := f.Registry.SetValue(tag, raw); err != nil {
			return err
		}
	}
	f.Recompute()
	return nil
}
