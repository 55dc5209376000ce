package schema

import (
	"errors"
	"testing"
)

func TestFormEditsRecompute(t *testing.T) {
	form := mustPhoneForm(t)
	dep, _ := form.Registry.Lookup("natAddress")

	if err := form.SetSelected("natEnabled", 1); err != nil {
		t.Fatalf("SetSelected: %v", err)
	}
	if dep.Hidden {
		t.Error("natAddress should be visible after enabling NAT")
	}

	// Index-addressed edits recompute too.
	ctl, _ := form.Registry.Lookup("natEnabled")
	var idx int
	for i := 0; i < form.Registry.Len(); i++ {
		if form.Registry.At(i) == ctl {
			idx = i
			break
		}
	}
	if err := form.SetSelectedAt(idx, 0); err != nil {
		t.Fatalf("SetSelectedAt: %v", err)
	}
	if !dep.Hidden {
		t.Error("natAddress should be hidden after disabling NAT by index")
	}
}

func TestApplyAnswers(t *testing.T) {
	t.Run("sets text and dropdowns by serialized value or label", func(t *testing.T) {
		form := mustPhoneForm(t)
		err := form.ApplyAnswers(map[string]string{
			"device":                 "AA:BB:CC:11:22:33",
			"processNodeName1":       "192.168.1.10",
			"transportLayerProtocol": "2",   // serialized value
			"natEnabled":             "Yes", // display label
		})
		if err != nil {
			t.Fatalf("ApplyAnswers: %v", err)
		}
		if got := form.Registry.Value("processNodeName1"); got != "192.168.1.10" {
			t.Errorf("processNodeName1=%q", got)
		}
		if got := form.Registry.SelectedValue("transportLayerProtocol"); got != "2" {
			t.Errorf("transport serialized=%q, want 2", got)
		}
		// Visibility follows the applied gate.
		if f, _ := form.Registry.Lookup("natAddress"); f.Hidden {
			t.Error("natAddress should be visible after answers enabled NAT")
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		form := mustPhoneForm(t)
		err := form.ApplyAnswers(map[string]string{"ghost": "x"})
		if !errors.Is(err, ErrUnknownTag) {
			t.Errorf("Expected ErrUnknownTag, got %v", err)
		}
	})

	t.Run("unknown option", func(t *testing.T) {
		form := mustPhoneForm(t)
		if err := form.ApplyAnswers(map[string]string{"natEnabled": "Maybe"}); err == nil {
			t.Error("Expected error for unknown option, got nil")
		}
	})
}
