package schema

import "fmt"

// Rule declares that a controller field's selection decides whether its
// dependent fields are visible. Controllers and dependents are identified by
// tag, so rule correctness does not depend on registry ordering.
//
// Rules are applied in declaration order; a later rule may override an
// earlier one for the same dependent. A rule only reads its controller's
// selection and only writes its dependents' hidden flags.
type Rule struct {
	Controller string
	Dependents []string

	// Visible is evaluated against the controller's selected option index.
	Visible func(selected int) bool
}

// ValidateRules checks that every tag a rule references exists in the
// registry. The schema is fixed at build time, so a mismatch here is a
// programming error; run this at construction, not per edit.
func ValidateRules(r *Registry, rules []Rule) error {
	for _, rule := range rules {
		if _, ok := r.Lookup(rule.Controller); !ok {
			return fmt.Errorf("%w: rule controller %q", ErrUnknownTag, rule.Controller)
		}
		for _, dep := range rule.Dependents {
			if _, ok := r.Lookup(dep); !ok {
				return fmt.Errorf("%w: dependent %q of controller %q", ErrUnknownTag, dep, rule.Controller)
			}
		}
	}
	return nil
}

// Recompute performs a single full pass assigning an explicit hidden flag to
// every field from the current controller selections. Every field is first
// marked visible, then each rule hides or shows its dependents, so the result
// is total and calling it redundantly is harmless.
func Recompute(r *Registry, rules []Rule) {
	for i := 0; i < r.Len(); i++ {
		r.At(i).Hidden = false
	}
	for _, rule := range rules {
		ctl, ok := r.Lookup(rule.Controller)
		if !ok {
			continue // rules are validated at construction
		}
		show := rule.Visible(ctl.Selected)
		for _, dep := range rule.Dependents {
			if f, ok := r.Lookup(dep); ok {
				f.Hidden = !show
			}
		}
	}
}
