package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"topo-schedule/internal/config"
)

func TestLoadUnknownSource(t *testing.T) {
	_, err := Load(context.Background(), &config.Config{FlowSource: "s3"})
	assert.ErrorContains(t, err, "unknown flow source")
}
