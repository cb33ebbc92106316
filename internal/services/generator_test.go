package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topo-schedule/internal/models"
)

func TestRandomGenerator(t *testing.T) {
	t.Run("builds every type with full schedules", func(t *testing.T) {
		tables := NewRandomGenerator(10, 42).Generate()
		require.Len(t, tables, len(models.ElementTypes))

		seen := map[string]bool{}
		for _, typ := range models.ElementTypes {
			rows := tables[typ]
			require.Len(t, rows, 10)
			assert.Equal(t, fmt.Sprintf("%s 1", typ), rows[0].ElementName)
			assert.Equal(t, fmt.Sprintf("%s 10", typ), rows[9].ElementName)
			for _, el := range rows {
				assert.True(t, strings.HasPrefix(el.MRID, "_"))
				assert.False(t, seen[el.MRID], "duplicate mRID %s", el.MRID)
				seen[el.MRID] = true
				assert.Contains(t, models.Groups, el.Group)
				assert.Len(t, el.Schedule, 24)
				for _, h := range models.Hours {
					assert.True(t, el.Schedule[h].Valid())
				}
			}
		}
	})

	t.Run("same seed and ids give the same tables", func(t *testing.T) {
		counter := func() func() string {
			n := 0
			return func() string { n++; return fmt.Sprintf("_id-%d", n) }
		}
		a := NewRandomGenerator(5, 7).WithIDFunc(counter()).Generate()
		b := NewRandomGenerator(5, 7).WithIDFunc(counter()).Generate()
		assert.Equal(t, a, b)
	})
}
