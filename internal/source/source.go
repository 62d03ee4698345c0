// Package source provides factory for raw-data sources.
package source

import (
	"context"
	"fmt"

	"github.com/mike-goetz/gerrit-charts/config"
	"github.com/mike-goetz/gerrit-charts/internal/source/file"
	"github.com/mike-goetz/gerrit-charts/internal/source/postgres"

	"go.uber.org/zap"
)

// New constructs a source backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Source, error) {
	switch name {
	case "file":
		return file.New(log, cfg), nil
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown source backend: %s", name)
	}
}
