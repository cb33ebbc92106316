package services

import (
	"strings"

	"topo-schedule/internal/models"
)

// FilterElements returns the rows of table matching every non-empty predicate,
// in their original order. Matching is case sensitive substring containment; an
// element with an empty attribute never matches a predicate on that attribute.
// The input table is never modified.
func FilterElements(table []models.SwitchingElement, params models.ElementFilterParams) []models.SwitchingElement {
	out := make([]models.SwitchingElement, 0, len(table))
	for _, el := range table {
		if !matches(el.MRID, params.MRIDContains) ||
			!matches(el.Group, params.GroupContains) ||
			!matches(el.ElementName, params.NameContains) {
			continue
		}
		out = append(out, el)
	}
	return out
}

func matches(value, substr string) bool {
	if substr == "" {
		return true
	}
	if value == "" {
		return false
	}
	return strings.Contains(value, substr)
}
