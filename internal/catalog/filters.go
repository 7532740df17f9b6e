package catalog

import (
	"strings"

	"griya/mdp/internal/models"
)

// Predicate selects housing entries for Filter.
type Predicate func(models.Housing) bool

// All matches when every predicate matches. No predicates match everything.
func All(preds ...Predicate) func(models.Housing) bool {
	return func(h models.Housing) bool {
		for _, p := range preds {
			if !p(h) {
				return false
			}
		}
		return true
	}
}

// ByStatus matches a status, case-insensitively.
func ByStatus(status string) Predicate {
	return func(h models.Housing) bool { return strings.EqualFold(h.Status, status) }
}

// ByType matches a housing type, case-insensitively.
func ByType(typ string) Predicate {
	return func(h models.Housing) bool { return strings.EqualFold(h.Type, typ) }
}

// LocationContains matches a substring of the location, case-insensitively.
func LocationContains(s string) Predicate {
	s = strings.ToLower(s)
	return func(h models.Housing) bool { return strings.Contains(strings.ToLower(h.Location), s) }
}

// PriceBetween matches lo <= price <= hi. A negative bound is open.
func PriceBetween(lo, hi float64) Predicate {
	return func(h models.Housing) bool {
		if lo >= 0 && h.Price < lo {
			return false
		}
		if hi >= 0 && h.Price > hi {
			return false
		}
		return true
	}
}

func MinBedrooms(n int) Predicate {
	return func(h models.Housing) bool { return h.Bedrooms >= n }
}

func MinRating(r float64) Predicate {
	return func(h models.Housing) bool { return h.Rating >= r }
}
