package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffMTU,DE_50HzT -> PL,PL -> DE_50HzT\n" +
	"01.01.2024 00:00 - 01.01.2024 01:00,500,n/e\n" +
	"01.01.2024 01:00 - 01.01.2024 02:00,410\n"

func TestReadCSV(t *testing.T) {
	t.Run("renames headers and keeps cells as strings", func(t *testing.T) {
		raw, err := ReadCSV(strings.NewReader(sampleCSV))
		require.NoError(t, err)
		assert.Equal(t, []string{"MTU", "50H -> PL", "PL -> 50H"}, raw.Header)
		require.Len(t, raw.Rows, 2)
		assert.Equal(t, "n/e", raw.Rows[0][2])
		assert.Len(t, raw.Rows[1], 2)
	})

	t.Run("empty input has no header", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestLoadCSVFile(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flows.csv")
		require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

		raw, err := LoadCSVFile(path)
		require.NoError(t, err)
		assert.Len(t, raw.Rows, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
