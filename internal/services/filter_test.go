package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"topo-schedule/internal/models"
)

func names(els []models.SwitchingElement) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = el.ElementName
	}
	return out
}

func TestFilterElements(t *testing.T) {
	reg := NewElementRegistry(fixtureTables())
	switches := reg.Table(models.ElementSwitch)
	breakers := reg.Table(models.ElementBreaker)

	cases := []struct {
		name   string
		table  []models.SwitchingElement
		params models.ElementFilterParams
		want   []string
	}{
		{"no predicates returns everything in order", switches, models.ElementFilterParams{}, []string{"Switch 1", "Switch 3", "Switch 10"}},
		{"name substring", switches, models.ElementFilterParams{NameContains: "Switch 3"}, []string{"Switch 3"}},
		{"name prefix matches several", switches, models.ElementFilterParams{NameContains: "Switch 1"}, []string{"Switch 1", "Switch 10"}},
		{"case sensitive", switches, models.ElementFilterParams{NameContains: "switch"}, []string{}},
		{"group", switches, models.ElementFilterParams{GroupContains: "H"}, []string{"Switch 10"}},
		{"mrid", switches, models.ElementFilterParams{MRIDContains: "bbb"}, []string{"Switch 3"}},
		{"predicates compose with AND", switches, models.ElementFilterParams{NameContains: "Switch 1", GroupContains: "VIE"}, []string{"Switch 1"}},
		{"AND with no overlap", switches, models.ElementFilterParams{NameContains: "Switch 3", GroupContains: "VIE"}, []string{}},
		{"missing attribute never matches", breakers, models.ElementFilterParams{GroupContains: "V"}, []string{"Breaker 1"}},
		{"missing mrid never matches", breakers, models.ElementFilterParams{MRIDContains: "_"}, []string{"Breaker 1"}},
		{"empty table", nil, models.ElementFilterParams{NameContains: "x"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterElements(tc.table, tc.params)
			assert.Equal(t, tc.want, names(got))
		})
	}

	t.Run("input is not modified", func(t *testing.T) {
		before := names(switches)
		_ = FilterElements(switches, models.ElementFilterParams{NameContains: "3"})
		assert.Equal(t, before, names(switches))
	})
}
