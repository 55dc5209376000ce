package schema

import (
	"errors"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()

	adds := []struct {
		field Field
		opts  []Option
		def   int
	}{
		{field: Field{Label: "=== SECTION ===", Kind: KindHeader, Help: "section"}},
		{field: Field{Label: "Name", Tag: "name", Kind: KindMandatory, Help: "name"}},
		{
			field: Field{Label: "Mode", Tag: "mode", Kind: KindOptional, Help: "mode"},
			opts:  options("Off", "0", "On", "1"),
		},
		{field: Field{Label: "Address", Tag: "addr", Kind: KindOptional, Help: "addr"}},
	}

	for _, a := range adds {
		var err error
		if len(a.opts) > 0 {
			_, err = r.AddDropdown(a.field, a.opts, a.def)
		} else {
			_, err = r.Add(a.field)
		}
		if err != nil {
			t.Fatalf("building test registry: %v", err)
		}
	}
	return r
}

func TestRegistryAdd(t *testing.T) {
	t.Run("returns stable indexes in declaration order", func(t *testing.T) {
		r := NewRegistry()
		i0, err := r.Add(Field{Label: "H", Kind: KindHeader})
		if err != nil {
			t.Fatalf("Add header: %v", err)
		}
		i1, err := r.Add(Field{Label: "A", Tag: "a", Kind: KindOptional})
		if err != nil {
			t.Fatalf("Add field: %v", err)
		}
		if i0 != 0 || i1 != 1 {
			t.Errorf("Expected indexes 0,1; got %d,%d", i0, i1)
		}
		if r.At(1).Tag != "a" {
			t.Errorf("At(1) returned tag %q, want %q", r.At(1).Tag, "a")
		}
	})

	t.Run("rejects duplicate tags", func(t *testing.T) {
		r := NewRegistry()
		if _, err := r.Add(Field{Label: "A", Tag: "a", Kind: KindOptional}); err != nil {
			t.Fatalf("first Add: %v", err)
		}
		if _, err := r.Add(Field{Label: "B", Tag: "a", Kind: KindOptional}); err == nil {
			t.Error("Expected error for duplicate tag, got nil")
		}
	})

	t.Run("rejects untagged non-header fields", func(t *testing.T) {
		r := NewRegistry()
		if _, err := r.Add(Field{Label: "A", Kind: KindOptional}); err == nil {
			t.Error("Expected error for missing tag, got nil")
		}
	})

	t.Run("headers need no tag", func(t *testing.T) {
		r := NewRegistry()
		if _, err := r.Add(Field{Label: "=== X ===", Kind: KindHeader}); err != nil {
			t.Errorf("Header Add failed: %v", err)
		}
	})
}

func TestAddDropdown(t *testing.T) {
	t.Run("defaults value to the default option label", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.AddDropdown(
			Field{Label: "Mode", Tag: "mode", Kind: KindOptional},
			options("Off", "0", "On", "1"), 1)
		if err != nil {
			t.Fatalf("AddDropdown: %v", err)
		}
		f, _ := r.Lookup("mode")
		if f.Value != "On" {
			t.Errorf("Expected value %q, got %q", "On", f.Value)
		}
		if f.Selected != 1 {
			t.Errorf("Expected selected=1, got %d", f.Selected)
		}
	})

	t.Run("rejects out-of-range default", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.AddDropdown(
			Field{Label: "Mode", Tag: "mode", Kind: KindOptional},
			options("Off", "0", "On", "1"), 2)
		if err == nil {
			t.Error("Expected error for default index 2, got nil")
		}
	})

	t.Run("rejects empty option set", func(t *testing.T) {
		r := NewRegistry()
		if _, err := r.AddDropdown(Field{Label: "Mode", Tag: "mode"}, nil, 0); err == nil {
			t.Error("Expected error for empty options, got nil")
		}
	})
}

func TestLookupAndValue(t *testing.T) {
	r := testRegistry(t)

	t.Run("lookup by tag", func(t *testing.T) {
		f, ok := r.Lookup("name")
		if !ok {
			t.Fatal("Lookup(name) not found")
		}
		if f.Label != "Name" {
			t.Errorf("Expected label %q, got %q", "Name", f.Label)
		}
	})

	t.Run("unknown tag returns empty value", func(t *testing.T) {
		if v := r.Value("nope"); v != "" {
			t.Errorf("Expected empty value for unknown tag, got %q", v)
		}
	})

	t.Run("selected value for dropdown", func(t *testing.T) {
		if v := r.SelectedValue("mode"); v != "0" {
			t.Errorf("Expected serialized %q, got %q", "0", v)
		}
	})

	t.Run("selected value for free text is empty", func(t *testing.T) {
		if v := r.SelectedValue("name"); v != "" {
			t.Errorf("Expected empty serialized value, got %q", v)
		}
	})

	t.Run("selected value for unknown tag is empty", func(t *testing.T) {
		if v := r.SelectedValue("nope"); v != "" {
			t.Errorf("Expected empty serialized value, got %q", v)
		}
	})
}

func TestSetValue(t *testing.T) {
	r := testRegistry(t)

	t.Run("updates free text", func(t *testing.T) {
		if err := r.SetValue("name", "lobby"); err != nil {
			t.Fatalf("SetValue: %v", err)
		}
		if r.Value("name") != "lobby" {
			t.Errorf("Expected %q, got %q", "lobby", r.Value("name"))
		}
	})

	t.Run("unknown tag errors with ErrUnknownTag", func(t *testing.T) {
		err := r.SetValue("nope", "x")
		if !errors.Is(err, ErrUnknownTag) {
			t.Errorf("Expected ErrUnknownTag, got %v", err)
		}
	})

	t.Run("refuses dropdowns", func(t *testing.T) {
		if err := r.SetValue("mode", "On"); err == nil {
			t.Error("Expected error setting value on a dropdown, got nil")
		}
	})
}

func TestSetSelected(t *testing.T) {
	r := testRegistry(t)

	t.Run("syncs value to option label", func(t *testing.T) {
		if err := r.SetSelected("mode", 1); err != nil {
			t.Fatalf("SetSelected: %v", err)
		}
		f, _ := r.Lookup("mode")
		if f.Value != "On" || f.Selected != 1 {
			t.Errorf("Expected (On,1), got (%q,%d)", f.Value, f.Selected)
		}
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		if err := r.SetSelected("mode", 2); err == nil {
			t.Error("Expected error for index 2, got nil")
		}
		if err := r.SetSelected("mode", -1); err == nil {
			t.Error("Expected error for index -1, got nil")
		}
	})

	t.Run("refuses free-text fields", func(t *testing.T) {
		if err := r.SetSelected("name", 0); err == nil {
			t.Error("Expected error selecting on free text, got nil")
		}
	})
}
