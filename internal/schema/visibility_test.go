package schema

import (
	"errors"
	"testing"
)

// hiddenFlags snapshots the hidden flag for every field.
func hiddenFlags(r *Registry) []bool {
	flags := make([]bool, r.Len())
	for i := 0; i < r.Len(); i++ {
		flags[i] = r.At(i).Hidden
	}
	return flags
}

func mustPhoneForm(t *testing.T) *Form {
	t.Helper()
	form, err := NewPhoneForm()
	if err != nil {
		t.Fatalf("NewPhoneForm: %v", err)
	}
	return form
}

func TestValidateRules(t *testing.T) {
	r := testRegistry(t)

	t.Run("accepts rules over known tags", func(t *testing.T) {
		rules := []Rule{{
			Controller: "mode",
			Dependents: []string{"addr"},
			Visible:    func(sel int) bool { return sel != 0 },
		}}
		if err := ValidateRules(r, rules); err != nil {
			t.Errorf("ValidateRules: %v", err)
		}
	})

	t.Run("rejects unknown controller", func(t *testing.T) {
		rules := []Rule{{Controller: "ghost", Dependents: []string{"addr"}, Visible: func(int) bool { return true }}}
		if err := ValidateRules(r, rules); !errors.Is(err, ErrUnknownTag) {
			t.Errorf("Expected ErrUnknownTag, got %v", err)
		}
	})

	t.Run("rejects unknown dependent", func(t *testing.T) {
		rules := []Rule{{Controller: "mode", Dependents: []string{"ghost"}, Visible: func(int) bool { return true }}}
		if err := ValidateRules(r, rules); !errors.Is(err, ErrUnknownTag) {
			t.Errorf("Expected ErrUnknownTag, got %v", err)
		}
	})
}

func TestRecomputeIdempotent(t *testing.T) {
	form := mustPhoneForm(t)

	first := hiddenFlags(form.Registry)
	form.Recompute()
	second := hiddenFlags(form.Registry)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Field %d (%s): hidden changed %v -> %v with no edit",
				i, form.Registry.At(i).Label, first[i], second[i])
		}
	}
}

func TestRecomputeCoverage(t *testing.T) {
	// Every field must receive an explicit assignment each pass: pre-poison
	// all flags and verify a recompute restores a consistent state.
	form := mustPhoneForm(t)
	want := hiddenFlags(form.Registry)

	for i := 0; i < form.Registry.Len(); i++ {
		form.Registry.At(i).Hidden = true
	}
	form.Recompute()

	got := hiddenFlags(form.Registry)
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("Field %d (%s): hidden=%v after poison+recompute, want %v",
				i, form.Registry.At(i).Label, got[i], want[i])
		}
	}
}

func TestGateRules(t *testing.T) {
	form := mustPhoneForm(t)

	gates := []struct {
		controller string
		dependent  string
		onIndex    int
		offIndex   int
	}{
		{"snmpEnabled", "snmpCommunity", 1, 0},
		{"natEnabled", "natAddress", 1, 0},
	}

	for _, g := range gates {
		t.Run(g.controller, func(t *testing.T) {
			dep, ok := form.Registry.Lookup(g.dependent)
			if !ok {
				t.Fatalf("dependent %q missing", g.dependent)
			}
			if !dep.Hidden {
				t.Errorf("%s should start hidden (controller defaults off)", g.dependent)
			}
			if err := form.SetSelected(g.controller, g.onIndex); err != nil {
				t.Fatalf("SetSelected on: %v", err)
			}
			if dep.Hidden {
				t.Errorf("%s still hidden with %s on", g.dependent, g.controller)
			}
			if err := form.SetSelected(g.controller, g.offIndex); err != nil {
				t.Fatalf("SetSelected off: %v", err)
			}
			if !dep.Hidden {
				t.Errorf("%s visible again with %s off", g.dependent, g.controller)
			}
		})
	}
}

func TestVlanModeRule(t *testing.T) {
	// pcPortVlanId requires one specific mode, not merely "not off".
	form := mustPhoneForm(t)
	dep, _ := form.Registry.Lookup("pcPortVlanId")

	for mode, wantHidden := range map[int]bool{0: true, 1: true, 2: false} {
		if err := form.SetSelected("pcVoiceVlanAccess", mode); err != nil {
			t.Fatalf("SetSelected(%d): %v", mode, err)
		}
		if dep.Hidden != wantHidden {
			t.Errorf("mode %d: pcPortVlanId hidden=%v, want %v", mode, dep.Hidden, wantHidden)
		}
	}
}

func TestButtonGroupRules(t *testing.T) {
	form := mustPhoneForm(t)

	basics := []string{"name", "displayName"}
	lineOnly := []string{"authName", "authPassword", "autoAnswerEnabled",
		"callForwardURI", "callPickupGroupURI", "voiceMailPilot"}

	check := func(t *testing.T, g int, names []string, wantHidden bool) {
		t.Helper()
		for _, n := range names {
			f, ok := form.Registry.Lookup(ButtonTag(g, n))
			if !ok {
				t.Fatalf("field %s missing", ButtonTag(g, n))
			}
			if f.Hidden != wantHidden {
				t.Errorf("%s: hidden=%v, want %v", ButtonTag(g, n), f.Hidden, wantHidden)
			}
		}
	}

	t.Run("disabled hides the whole block", func(t *testing.T) {
		if err := form.SetSelected(ButtonTag(2, "lineType"), 0); err != nil {
			t.Fatalf("SetSelected: %v", err)
		}
		check(t, 2, basics, true)
		check(t, 2, lineOnly, true)
	})

	t.Run("line reveals everything", func(t *testing.T) {
		if err := form.SetSelected(ButtonTag(2, "lineType"), 1); err != nil {
			t.Fatalf("SetSelected: %v", err)
		}
		check(t, 2, basics, false)
		check(t, 2, lineOnly, false)
	})

	t.Run("speed dial reveals only the basics", func(t *testing.T) {
		if err := form.SetSelected(ButtonTag(2, "lineType"), 2); err != nil {
			t.Fatalf("SetSelected: %v", err)
		}
		check(t, 2, basics, false)
		check(t, 2, lineOnly, true)
	})

	t.Run("groups are independent", func(t *testing.T) {
		// Button 1 defaults to Line; toggling button 2 must not disturb it.
		check(t, 1, basics, false)
		check(t, 1, lineOnly, false)
	})
}

func TestPhoneFormDefaults(t *testing.T) {
	form := mustPhoneForm(t)

	t.Run("button 1 defaults to line, others disabled", func(t *testing.T) {
		for g := 1; g <= ButtonGroups; g++ {
			f, _ := form.Registry.Lookup(ButtonTag(g, "lineType"))
			want := 0
			if g == 1 {
				want = 1
			}
			if f.Selected != want {
				t.Errorf("button %d lineType selected=%d, want %d", g, f.Selected, want)
			}
		}
	})

	t.Run("timezone defaults to pacific", func(t *testing.T) {
		if v := form.Registry.SelectedValue("timeZone"); v != "Pacific Standard/Daylight Time" {
			t.Errorf("timeZone default %q", v)
		}
	})

	t.Run("conditional fields start hidden", func(t *testing.T) {
		for _, tag := range []string{"snmpCommunity", "natAddress", "pcPortVlanId"} {
			f, _ := form.Registry.Lookup(tag)
			if !f.Hidden {
				t.Errorf("%s should be hidden at defaults", tag)
			}
		}
	})
}
