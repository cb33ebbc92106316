package ingest

import (
	"context"
	"fmt"

	"topo-schedule/internal/config"
	"topo-schedule/internal/database"
	"topo-schedule/internal/models"
)

// Load reads the raw flow table from the configured source.
func Load(ctx context.Context, cfg *config.Config) (models.RawTable, error) {
	switch cfg.FlowSource {
	case "", "csv":
		return LoadCSVFile(cfg.FlowCSVPath)
	case "postgres":
		db, err := database.New(cfg.DatabaseURL, cfg)
		if err != nil {
			return models.RawTable{}, err
		}
		defer db.Close()
		return LoadTable(ctx, db, cfg.FlowTable, cfg.FlowOrderColumn)
	default:
		return models.RawTable{}, fmt.Errorf("unknown flow source %q", cfg.FlowSource)
	}
}
