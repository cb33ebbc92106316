package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topo-schedule/internal/models"
)

func TestLoadFlowDataset(t *testing.T) {
	t.Run("coerces values and derives net flows", func(t *testing.T) {
		raw := models.RawTable{
			Header: []string{"MTU", "50H -> PL", "PL -> 50H", "50H -> CZ", "CZ -> 50H", "50H -> DK", "DK -> 50H"},
			Rows: [][]string{
				{"01.01.2024 00:00 - 01.01.2024 01:00", "500", "120.5", "n/e", "300", "abc", ""},
				{"01.01.2024 01:00 - 01.01.2024 02:00", "NaN", "10", "40", "n/e", "7"},
			},
		}

		ds, err := LoadFlowDataset(raw)
		require.NoError(t, err)
		require.Equal(t, 2, ds.Len())

		rows := ds.Slice(0, 2).Rows
		assert.Equal(t, "01.01.2024 00:00 - 01.01.2024 01:00", rows[0].MTU)
		assert.Equal(t, 0.0, rows[0].Flows["50H -> CZ"])
		assert.InDelta(t, 379.5, rows[0].Flows[models.NetPL], 1e-9)
		assert.Equal(t, -300.0, rows[0].Flows[models.NetCZ])
		assert.Equal(t, 0.0, rows[0].Flows[models.NetDK])

		// NaN and the short row's missing trailing cell both become 0
		assert.Equal(t, -10.0, rows[1].Flows[models.NetPL])
		assert.Equal(t, 40.0, rows[1].Flows[models.NetCZ])
		assert.Equal(t, 7.0, rows[1].Flows[models.NetDK])
	})

	t.Run("net columns come last", func(t *testing.T) {
		ds := mustDataset(t, 1)
		cols := ds.Columns()
		assert.Equal(t, []string{models.NetPL, models.NetCZ, models.NetDK}, cols[len(cols)-3:])
		assert.NotContains(t, cols, models.TimestampColumn)
	})

	t.Run("missing raw border columns count as zero", func(t *testing.T) {
		ds, err := LoadFlowDataset(models.RawTable{
			Header: []string{"MTU", "50H -> PL"},
			Rows:   [][]string{{"t0", "42"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 42.0, ds.Slice(0, 1).Rows[0].Flows[models.NetPL])
	})

	t.Run("missing timestamp column is a load error", func(t *testing.T) {
		_, err := LoadFlowDataset(models.RawTable{Header: []string{"50H -> PL"}, Rows: [][]string{{"1"}}})
		var le *LoadError
		require.ErrorAs(t, err, &le)
		assert.Contains(t, err.Error(), "MTU")
	})
}

func TestFlowDatasetSlice(t *testing.T) {
	ds := mustDataset(t, 30)

	cases := []struct {
		name       string
		start, end int
		wantLen    int
		wantFirst  string
	}{
		{"inside", 0, 24, 24, "row-0"},
		{"clamped end", 24, 48, 6, "row-24"},
		{"start past end", 40, 64, 0, ""},
		{"negative start", -5, 3, 3, "row-0"},
		{"inverted", 10, 5, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := ds.Slice(tc.start, tc.end)
			require.Len(t, s.Rows, tc.wantLen)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.wantFirst, s.Rows[0].MTU)
			}
		})
	}

	t.Run("slices are copies", func(t *testing.T) {
		s := ds.Slice(0, 1)
		s.Rows[0].Flows[models.NetPL] = 9999
		assert.Equal(t, 0.0, ds.Slice(0, 1).Rows[0].Flows[models.NetPL])
	})

	t.Run("empty dataset", func(t *testing.T) {
		empty := EmptyFlowDataset()
		assert.Equal(t, 0, empty.Len())
		assert.Empty(t, empty.Slice(0, 24).Rows)
	})
}
