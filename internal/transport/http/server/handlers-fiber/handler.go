// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/mike-goetz/gerrit-charts/internal/entities"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Engine abstracts the aggregation engine for the delivery layer.
type Engine interface {
	Filter() entities.Filter
	SetFilter(filter entities.Filter) error
	Projects() []entities.ProjectEntry
	Contributors() []entities.ContributorEntry
	PersonData(person entities.Person, team entities.Team) (entities.PersonAnalytics, error)
	TeamData(team entities.Team) []entities.PersonSeries
	Series(cohort []entities.Person) []entities.PersonSeries
	BusiestDay() (entities.BusiestDay, bool)
	CommitCount() int
	ContributorCount() int
}

// Directory abstracts person and team lookup for the delivery layer.
type Directory interface {
	Person(username string) (entities.Person, entities.Team, bool)
	Team(name string) (entities.Team, bool)
	Teams(contributors []entities.ContributorEntry) []entities.Team
}

// Handler serves the derived analytical views over HTTP.
type Handler struct {
	log    *zap.SugaredLogger
	engine Engine
	dir    Directory
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, engine Engine, dir Directory) *Handler {
	return &Handler{
		log:    log,
		engine: engine,
		dir:    dir,
	}
}

// Register attaches all routes to the fiber app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/projects", h.GetProjects)
	api.Get("/contributors", h.GetContributors)
	api.Get("/contributors/:username", h.GetPersonAnalytics)
	api.Get("/series", h.GetSeries)
	api.Get("/teams", h.GetTeams)
	api.Get("/teams/:name/series", h.GetTeamSeries)
	api.Get("/busiest-day", h.GetBusiestDay)
	api.Get("/summary", h.GetSummary)
	api.Get("/filter", h.GetFilter)
	api.Put("/filter", h.PutFilter)
}
