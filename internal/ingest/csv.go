package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"topo-schedule/internal/models"
)

// headerRenames shortens TSO names in the ENTSO-E export headers.
var headerRenames = strings.NewReplacer("DE_50HzT", "50H")

// ReadCSV parses a cross-border flow export with the header on the first row.
func ReadCSV(r io.Reader) (models.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return models.RawTable{}, fmt.Errorf("csv has no header row")
		}
		return models.RawTable{}, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = headerRenames.Replace(strings.TrimSpace(header[i]))
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.RawTable{}, fmt.Errorf("failed to read csv row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, rec)
	}

	return models.RawTable{Header: header, Rows: rows}, nil
}

// LoadCSVFile reads the flow export at path.
func LoadCSVFile(path string) (models.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("failed to open flow csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}
