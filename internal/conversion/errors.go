package conversion

import (
	"errors"
	"fmt"
)

// ErrNoResult is the single public outcome of a query that cannot be converted. Every
// user-input failure below wraps it.
var ErrNoResult = errors.New("could not parse conversion")

var (
	// ErrTokenize means the query does not have the "<number> <unit> <separator> <unit>" shape.
	ErrTokenize = fmt.Errorf("%w: unrecognized query shape", ErrNoResult)
	// ErrUnitNotFound means a unit phrase resolved to no unit, with or without a prefix.
	ErrUnitNotFound = fmt.Errorf("%w: unknown unit", ErrNoResult)
	// ErrFamilyMismatch means both phrases resolved but no pair of candidates shares a family.
	ErrFamilyMismatch = fmt.Errorf("%w: incompatible units", ErrNoResult)
)

// FailureKind names the failure for logs and problem reports.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTokenize):
		return "tokenize"
	case errors.Is(err, ErrUnitNotFound):
		return "unit_not_found"
	case errors.Is(err, ErrFamilyMismatch):
		return "family_mismatch"
	default:
		return "internal"
	}
}
