package schema

// Next returns the index of the nearest selectable field after from,
// skipping headers and currently hidden fields. When no selectable field
// follows, it falls back to the nearest selectable field at or before from,
// so a cursor already on a selectable field holds its position at the
// boundary. Any from value is accepted; the result is always a selectable
// in-range index, or -1 when the registry has no selectable field at all.
func Next(r *Registry, from int) int {
	if from < -1 {
		from = -1
	}
	for i := from + 1; i < r.Len(); i++ {
		if r.At(i).Selectable() {
			return i
		}
	}
	if from >= r.Len() {
		from = r.Len() - 1
	}
	for i := from; i >= 0; i-- {
		if r.At(i).Selectable() {
			return i
		}
	}
	return -1
}

// Prev returns the index of the nearest selectable field before from, with
// the same skipping, boundary, and fallback behavior as Next.
func Prev(r *Registry, from int) int {
	if from > r.Len() {
		from = r.Len()
	}
	for i := from - 1; i >= 0; i-- {
		if r.At(i).Selectable() {
			return i
		}
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < r.Len(); i++ {
		if r.At(i).Selectable() {
			return i
		}
	}
	return -1
}

// First returns the index of the first selectable field, or -1 when the
// registry has none.
func First(r *Registry) int {
	for i := 0; i < r.Len(); i++ {
		if r.At(i).Selectable() {
			return i
		}
	}
	return -1
}
