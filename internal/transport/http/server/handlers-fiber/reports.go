package handlers_fiber

import (
	"fmt"
	"net/http"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
	"github.com/mike-goetz/gerrit-charts/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetProjects returns the per-project activity report.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.engine.Projects())
}

// GetContributors returns the contributor leaderboard.
func (h *Handler) GetContributors(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.engine.Contributors())
}

// GetPersonAnalytics returns one person's daily contribution analytics.
func (h *Handler) GetPersonAnalytics(c *fiber.Ctx) error {
	username := c.Params("username")
	person, team, ok := h.dir.Person(username)
	if !ok {
		return writeError(c, fmt.Errorf("%w: %s", entities.ErrPersonNotFound, username))
	}

	data, err := h.engine.PersonData(person, team)
	if err != nil {
		h.log.Errorw("failed to get person analytics", "username", username, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(data)
}

// GetSeries returns commit time series for all current contributors.
func (h *Handler) GetSeries(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.engine.Series(nil))
}

// GetTeams returns all known teams with their members restricted to the
// contributors currently in scope.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.dir.Teams(h.engine.Contributors()))
}

// GetTeamSeries returns per-member commit time series for one team.
func (h *Handler) GetTeamSeries(c *fiber.Ctx) error {
	name := c.Params("name")
	team, ok := h.dir.Team(name)
	if !ok {
		return writeError(c, fmt.Errorf("%w: %s", entities.ErrTeamNotFound, name))
	}
	return c.Status(http.StatusOK).JSON(h.engine.TeamData(team))
}

// GetBusiestDay returns the date with the most submitted changes, or 204
// when nothing is in scope.
func (h *Handler) GetBusiestDay(c *fiber.Ctx) error {
	day, ok := h.engine.BusiestDay()
	if !ok {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Status(http.StatusOK).JSON(day)
}

// GetSummary returns headline counts plus the active filter.
func (h *Handler) GetSummary(c *fiber.Ctx) error {
	summary := mapper.ToSummary(h.engine.CommitCount(), h.engine.ContributorCount(), h.engine.Filter())
	return c.Status(http.StatusOK).JSON(summary)
}
