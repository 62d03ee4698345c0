// Package source contains raw-data source interfaces for ingestion backends.
package source

import (
	"context"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// LifecycleInterface describes source startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ChangeInterface exposes the raw change list, normalized and sorted by
// submission time descending. Fetched once at startup; the result is
// static for the process lifetime.
type ChangeInterface interface {
	Changes(ctx context.Context) ([]entities.Change, error)
}

// TeamInterface exposes the team master data.
type TeamInterface interface {
	Teams(ctx context.Context) ([]entities.Team, error)
}

// Source aggregates all ingestion interfaces.
type Source interface {
	LifecycleInterface
	ChangeInterface
	TeamInterface
}
