package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mike-goetz/gerrit-charts/config"
	"github.com/mike-goetz/gerrit-charts/internal/entities"

	"go.uber.org/zap"
)

// Source reads the Gerrit change export and team master data from JSON
// assets on local disk.
type Source struct {
	log *zap.SugaredLogger
	cfg config.FileConfig
}

// New creates a file source instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *Source {
	return &Source{
		log: log.Named("source.file"),
		cfg: cfg.Source.File,
	}
}

// OnStart verifies both asset files are readable.
func (s *Source) OnStart(_ context.Context) error {
	for _, path := range []string{s.cfg.Changes, s.cfg.Teams} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}
	s.log.Infow("file source ready", "changes", s.cfg.Changes, "teams", s.cfg.Teams)
	return nil
}

// OnStop is a no-op for the file backend.
func (s *Source) OnStop(_ context.Context) error {
	return nil
}

// Changes loads and normalizes the raw change export.
func (s *Source) Changes(_ context.Context) ([]entities.Change, error) {
	data, err := os.ReadFile(s.cfg.Changes)
	if err != nil {
		return nil, fmt.Errorf("read changes: %w", err)
	}

	var raw []rawChange
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode changes: %w", err)
	}

	changes, err := normalizeChanges(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize changes: %w", err)
	}
	s.log.Infow("changes loaded", "count", len(changes))
	return changes, nil
}

// Teams loads the team master data.
func (s *Source) Teams(_ context.Context) ([]entities.Team, error) {
	data, err := os.ReadFile(s.cfg.Teams)
	if err != nil {
		return nil, fmt.Errorf("read teams: %w", err)
	}

	var raw []rawTeam
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}

	teams := make([]entities.Team, 0, len(raw))
	for _, t := range raw {
		members := make([]entities.Person, 0, len(t.Members))
		for _, m := range t.Members {
			members = append(members, normalizePerson(m))
		}
		teams = append(teams, entities.Team{Name: t.Name, Members: members})
	}
	s.log.Infow("teams loaded", "count", len(teams))
	return teams, nil
}
