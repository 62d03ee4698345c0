package handlers_fiber

import (
	"fmt"
	"net/http"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
	"github.com/mike-goetz/gerrit-charts/internal/mapper"
	"github.com/mike-goetz/gerrit-charts/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetFilter returns the active filter.
func (h *Handler) GetFilter(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.engine.Filter())
}

// PutFilter merges a partial filter update onto the current filter and
// applies it, triggering a full recomputation of every derived view.
func (h *Handler) PutFilter(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fmt.Errorf("%w: %s", entities.ErrInvalidArgument, err.Error()))
	}

	merged := mapper.MergeFilter(h.engine.Filter(), req)
	if err := h.engine.SetFilter(merged); err != nil {
		h.log.Errorw("failed to update filter", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(merged)
}
