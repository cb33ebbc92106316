package services

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"topo-schedule/internal/models"
)

func schedule(status models.Status) map[string]models.Status {
	s := make(map[string]models.Status, len(models.Hours))
	for _, h := range models.Hours {
		s[h] = status
	}
	return s
}

// fixtureTables holds three switches, two breakers and nothing else, all open.
func fixtureTables() FixtureGenerator {
	return FixtureGenerator{
		models.ElementSwitch: {
			{ElementName: "Switch 1", MRID: "_aaa-111", InService: true, Group: "VIE", Schedule: schedule(models.StatusOpen)},
			{ElementName: "Switch 3", MRID: "_bbb-333", InService: false, Group: "ROE", Schedule: schedule(models.StatusOpen)},
			{ElementName: "Switch 10", MRID: "_ccc-100", InService: true, Group: "HH", Schedule: schedule(models.StatusOpen)},
		},
		models.ElementBreaker: {
			{ElementName: "Breaker 1", MRID: "_ddd-111", InService: true, Group: "VIE", Schedule: schedule(models.StatusClosed)},
			{ElementName: "Breaker 2", MRID: "", InService: true, Group: "", Schedule: schedule(models.StatusClosed)},
		},
	}
}

// flowTable builds n rows where every raw column of row i holds i.
func flowTable(n int) models.RawTable {
	header := []string{"MTU", "50H -> PL", "PL -> 50H", "50H -> CZ", "CZ -> 50H", "50H -> DK", "DK -> 50H"}
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("row-%d", i)}
		for range header[1:] {
			rows[i] = append(rows[i], fmt.Sprintf("%d", i))
		}
	}
	return models.RawTable{Header: header, Rows: rows}
}

func mustDataset(t *testing.T, n int) *FlowDataset {
	t.Helper()
	ds, err := LoadFlowDataset(flowTable(n))
	if err != nil {
		t.Fatalf("load flow dataset: %v", err)
	}
	return ds
}

func newTestStore() *SessionStore {
	return NewSessionStore(fixtureTables(), time.Hour, time.Minute, zap.NewNop())
}
