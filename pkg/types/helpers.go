package types

import (
	"cmp"

	"tabula/pkg/dberr"
)

// compareOrdered evaluates op between two naturally ordered scalars.
func compareOrdered[T cmp.Ordered](a, b T, op Predicate) bool {
	switch op {
	case Equals:
		return a == b
	case LessThan:
		return a < b
	case GreaterThan:
		return a > b
	case LessThanOrEqual:
		return a <= b
	case GreaterThanOrEqual:
		return a >= b
	case NotEqual:
		return a != b
	default:
		return false
	}
}

func orderMismatch(a, b Field) error {
	return dberr.Newf(dberr.CodeConfiguration,
		"cannot order values of different domains (%s vs %s)", a.Type(), b.Type())
}
