package ingest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	"topo-schedule/internal/models"
)

// LoadTable reads every row of a Postgres flow table as strings, ordered by
// orderColumn when one is given. Column names get the same renames as the CSV path.
func LoadTable(ctx context.Context, db *bun.DB, table, orderColumn string) (models.RawTable, error) {
	query, args := "SELECT * FROM ?", []any{bun.Ident(table)}
	if orderColumn != "" {
		query, args = "SELECT * FROM ? ORDER BY ?", append(args, bun.Ident(orderColumn))
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("failed to query flow table %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return models.RawTable{}, fmt.Errorf("failed to read flow table columns: %w", err)
	}
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = headerRenames.Replace(c)
	}

	var out [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return models.RawTable{}, fmt.Errorf("failed to scan flow row: %w", err)
		}
		rec := make([]string, len(cols))
		for i, c := range cells {
			if c.Valid {
				rec[i] = c.String
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return models.RawTable{}, fmt.Errorf("failed to iterate flow table: %w", err)
	}

	return models.RawTable{Header: header, Rows: out}, nil
}
