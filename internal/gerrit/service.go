// Package gerrit contains the aggregation engine turning the normalized
// change list into derived analytical views. Every view is scoped by a
// single mutable filter; replacing the filter rebuilds the scoped change
// lists and re-notifies all subscribers, so derived views stay consistent.
package gerrit

import (
	"sync"
	"time"

	"github.com/mike-goetz/gerrit-charts/internal/entities"

	"go.uber.org/zap"
)

// Directory resolves team membership for contributors. The engine owns no
// team data itself.
type Directory interface {
	TeamOf(person entities.Person) (entities.Team, bool)
}

// Service holds the full normalized change list and the filter-scoped
// subsets. The change list is static after construction; only the filter
// mutates, and every mutation rebuilds both subsets wholesale before any
// subscriber is notified.
type Service struct {
	log       *zap.SugaredLogger
	directory Directory
	now       func() time.Time

	mu sync.RWMutex
	// updateMu serializes filter updates end to end, including subscriber
	// notification, so one update is fully delivered before the next starts.
	updateMu    sync.Mutex
	all         []entities.Change
	dateScoped  []entities.Change
	filtered    []entities.Change
	filter      entities.Filter
	asOf        time.Time
	subscribers []func(entities.Filter)
}

// New constructs the engine over an already normalized, submission-sorted
// change list and applies the initial filter.
func New(log *zap.SugaredLogger, directory Directory, changes []entities.Change, initial entities.Filter) (*Service, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		log:       log.Named("gerrit"),
		directory: directory,
		now:       time.Now,
		all:       changes,
		filter:    initial,
	}

	s.mu.Lock()
	s.rebuild()
	s.mu.Unlock()
	return s, nil
}

// Filter returns the current filter value.
func (s *Service) Filter() entities.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Subscribe registers a callback invoked after every filter change, once
// the scoped lists are rebuilt. Callbacks run in registration order.
func (s *Service) Subscribe(fn func(entities.Filter)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SetFilter replaces the filter, rebuilds the scoped change lists and
// notifies all subscribers. This is the sole trigger for recomputation.
func (s *Service) SetFilter(filter entities.Filter) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	s.mu.Lock()
	s.filter = filter
	s.rebuild()
	subscribers := make([]func(entities.Filter), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	s.log.Infow("filter updated",
		"number_of_days", filter.NumberOfDays,
		"projects", filter.Projects,
		"summarize_commits", filter.SummarizeCommits,
	)
	for _, fn := range subscribers {
		fn(filter)
	}
	return nil
}

// UpdateProjects replaces only the project allow-list, keeping the rest of
// the filter.
func (s *Service) UpdateProjects(projects []string) error {
	filter := s.Filter()
	filter.Projects = projects
	return s.SetFilter(filter)
}

// rebuild recomputes both scoped subsets from the static change list.
// Callers must hold the write lock. The rebuild timestamp is recorded so
// every bucketed view uses the same day window until the next rebuild.
func (s *Service) rebuild() {
	s.asOf = s.now()

	dateScoped := make([]entities.Change, 0, len(s.all))
	filtered := make([]entities.Change, 0, len(s.all))
	for _, c := range s.all {
		if !s.inDateScope(c) {
			continue
		}
		dateScoped = append(dateScoped, c)
		if s.inProjectScope(c) {
			filtered = append(filtered, c)
		}
	}
	s.dateScoped = dateScoped
	s.filtered = filtered
}

// CommitCount returns the number of changes passing the full filter.
func (s *Service) CommitCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.filtered)
}
