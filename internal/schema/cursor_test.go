package schema

import "testing"

// navRegistry builds a small registry with a known visibility shape:
//
//	0 header
//	1 text    (visible)
//	2 text    (hidden)
//	3 header
//	4 text    (visible)
func navRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	fields := []Field{
		{Label: "=== A ===", Kind: KindHeader},
		{Label: "one", Tag: "one", Kind: KindOptional},
		{Label: "two", Tag: "two", Kind: KindOptional},
		{Label: "=== B ===", Kind: KindHeader},
		{Label: "three", Tag: "three", Kind: KindOptional},
	}
	for _, f := range fields {
		if _, err := r.Add(f); err != nil {
			t.Fatalf("Add(%s): %v", f.Label, err)
		}
	}
	r.At(2).Hidden = true
	return r
}

func TestNext(t *testing.T) {
	r := navRegistry(t)

	t.Run("skips hidden fields and headers", func(t *testing.T) {
		if got := Next(r, 1); got != 4 {
			t.Errorf("Next(1)=%d, want 4", got)
		}
	})

	t.Run("holds at the last selectable field", func(t *testing.T) {
		if got := Next(r, 4); got != 4 {
			t.Errorf("Next(4)=%d, want 4", got)
		}
	})

	t.Run("finds the first selectable from before the start", func(t *testing.T) {
		if got := Next(r, -1); got != 1 {
			t.Errorf("Next(-1)=%d, want 1", got)
		}
	})

	t.Run("clamps a far out-of-range start", func(t *testing.T) {
		if got := Next(r, -5); got != 1 {
			t.Errorf("Next(-5)=%d, want 1", got)
		}
		if got := Next(r, 10); got != 4 {
			t.Errorf("Next(10)=%d, want 4", got)
		}
	})
}

func TestPrev(t *testing.T) {
	r := navRegistry(t)

	t.Run("skips hidden fields and headers", func(t *testing.T) {
		if got := Prev(r, 4); got != 1 {
			t.Errorf("Prev(4)=%d, want 1", got)
		}
	})

	t.Run("holds at the first selectable field", func(t *testing.T) {
		if got := Prev(r, 1); got != 1 {
			t.Errorf("Prev(1)=%d, want 1", got)
		}
	})

	t.Run("leaves a leading header for the nearest selectable", func(t *testing.T) {
		if got := Prev(r, 0); got != 1 {
			t.Errorf("Prev(0)=%d, want 1", got)
		}
	})

	t.Run("clamps a far out-of-range start", func(t *testing.T) {
		if got := Prev(r, -5); got != 1 {
			t.Errorf("Prev(-5)=%d, want 1", got)
		}
		if got := Prev(r, 10); got != 4 {
			t.Errorf("Prev(10)=%d, want 4", got)
		}
	})
}

func TestNavigatorEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	if got := Next(r, 0); got != -1 {
		t.Errorf("Next on empty registry = %d, want -1", got)
	}
	if got := Prev(r, 0); got != -1 {
		t.Errorf("Prev on empty registry = %d, want -1", got)
	}

	// A registry holding only headers has nothing to land on either.
	r = navRegistry(t)
	r.At(1).Hidden = true
	r.At(4).Hidden = true
	if got := Next(r, 2); got != -1 {
		t.Errorf("Next with nothing selectable = %d, want -1", got)
	}
	if got := Prev(r, 2); got != -1 {
		t.Errorf("Prev with nothing selectable = %d, want -1", got)
	}
}

func TestNavigatorNeverLandsOnUnselectable(t *testing.T) {
	form := mustPhoneForm(t)
	r := form.Registry

	for from := -1; from <= r.Len(); from++ {
		for _, got := range []int{Next(r, from), Prev(r, from)} {
			if got == from {
				continue // held position
			}
			if got < 0 || got >= r.Len() {
				t.Fatalf("navigator returned out-of-range index %d from %d", got, from)
			}
			if !r.At(got).Selectable() {
				t.Errorf("navigator landed on unselectable field %d (%s) from %d",
					got, r.At(got).Label, from)
			}
		}
	}
}

func TestFirst(t *testing.T) {
	t.Run("skips the leading header", func(t *testing.T) {
		r := navRegistry(t)
		if got := First(r); got != 1 {
			t.Errorf("First=%d, want 1", got)
		}
	})

	t.Run("empty registry has no first", func(t *testing.T) {
		if got := First(NewRegistry()); got != -1 {
			t.Errorf("First=%d, want -1", got)
		}
	})
}
