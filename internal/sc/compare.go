package sc

// Comp performs an unsigned three-way comparison of a and b over the wider
// of their two buffer widths.
func Comp(a, b []Word) Relation {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		av, bv := wordAt(a, i), wordAt(b, i)
		switch {
		case av < bv:
			return Less
		case av > bv:
			return Greater
		}
	}
	return Equal
}
