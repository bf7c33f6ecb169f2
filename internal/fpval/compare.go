package fpval

import "github.com/yws/fltcalc/internal/sc"

// Ordering is the result of comparing two Values, extending sc.Relation
// with Unordered for NaN comparisons.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
	Unordered
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}

func fromRelation(r sc.Relation) Ordering {
	switch r {
	case sc.Less:
		return Less
	case sc.Greater:
		return Greater
	default:
		return Equal
	}
}

func invert(o Ordering) Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}

// Compare orders a and b, returning Unordered whenever either is NaN.
// Zero compares equal regardless of sign.
func Compare(a, b *Value) Ordering {
	if a == b {
		if a.Class == NaN {
			return Unordered
		}
		return Equal
	}
	if a.Class == NaN || b.Class == NaN {
		return Unordered
	}
	if a.Class == Zero && b.Class == Zero {
		return Equal
	}
	if a.Sign != b.Sign {
		if !a.Sign {
			return Greater
		}
		return Less
	}

	negated := a.Sign

	if a.Class == Inf && b.Class == Inf {
		return Equal
	}
	if a.Class == Inf {
		if negated {
			return Less
		}
		return Greater
	}
	if b.Class == Inf {
		if negated {
			return Greater
		}
		return Less
	}

	rel := fromRelation(sc.Comp(a.Exponent, b.Exponent))
	if rel == Equal {
		rel = fromRelation(sc.Comp(a.Mantissa, b.Mantissa))
	}
	if rel != Equal && negated {
		rel = invert(rel)
	}
	return rel
}
