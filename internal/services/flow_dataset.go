package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"topo-schedule/internal/models"
)

// missingValue is the source sentinel for "not expected" cells.
const missingValue = "n/e"

// FlowDataset is the normalized cross-border flow time series. It is immutable
// after LoadFlowDataset and safe for concurrent readers.
type FlowDataset struct {
	columns []string
	rows    []models.FlowRecord
}

// LoadFlowDataset coerces every non-timestamp column to float64, storing 0 for
// "n/e", blanks and any other non-numeric cell, and appends the net border
// columns. A raw column a net flow needs but the table lacks counts as 0.
func LoadFlowDataset(raw models.RawTable) (*FlowDataset, error) {
	tsIdx := -1
	for i, h := range raw.Header {
		if strings.TrimSpace(h) == models.TimestampColumn {
			tsIdx = i
			break
		}
	}
	if tsIdx < 0 {
		return nil, &LoadError{Err: errors.New("timestamp column " + models.TimestampColumn + " is missing")}
	}

	columns := make([]string, 0, len(raw.Header)+len(models.NetFlows))
	for i, h := range raw.Header {
		if i == tsIdx {
			continue
		}
		columns = append(columns, strings.TrimSpace(h))
	}
	for _, nf := range models.NetFlows {
		columns = append(columns, nf.Column)
	}

	rows := make([]models.FlowRecord, 0, len(raw.Rows))
	for _, cells := range raw.Rows {
		rec := models.FlowRecord{Flows: make(map[string]float64, len(columns))}
		for i, h := range raw.Header {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			if i == tsIdx {
				rec.MTU = strings.TrimSpace(cell)
				continue
			}
			rec.Flows[strings.TrimSpace(h)] = parseFlow(cell)
		}
		for _, nf := range models.NetFlows {
			rec.Flows[nf.Column] = rec.Flows[nf.Inbound] - rec.Flows[nf.Outbound]
		}
		rows = append(rows, rec)
	}

	return &FlowDataset{columns: columns, rows: rows}, nil
}

// EmptyFlowDataset is the fallback used when the reference data fails to load.
func EmptyFlowDataset() *FlowDataset {
	return &FlowDataset{}
}

func parseFlow(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == missingValue {
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Len returns the number of MTU rows.
func (d *FlowDataset) Len() int { return len(d.rows) }

// Columns returns the numeric column names, net columns last.
func (d *FlowDataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Slice returns rows [start, end) clamped to the dataset bounds.
func (d *FlowDataset) Slice(start, end int) models.FlowSlice {
	start = max(0, min(start, len(d.rows)))
	end = max(start, min(end, len(d.rows)))

	out := make([]models.FlowRecord, 0, end-start)
	for _, r := range d.rows[start:end] {
		flows := make(map[string]float64, len(r.Flows))
		for k, v := range r.Flows {
			flows[k] = v
		}
		out = append(out, models.FlowRecord{MTU: r.MTU, Flows: flows})
	}
	return models.FlowSlice{Columns: d.Columns(), Rows: out}
}

// SliceWindow is Slice over a window.
func (d *FlowDataset) SliceWindow(w models.Window) models.FlowSlice {
	return d.Slice(w.Start, w.End)
}
