package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
	"github.com/mike-goetz/gerrit-charts/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidFilter):
		status = http.StatusBadRequest
		code = dto.CodeInvalidFilter
		msg = err.Error()
	case errors.Is(err, entities.ErrEmptyCohort):
		status = http.StatusUnprocessableEntity
		code = dto.CodeEmptyCohort
		msg = err.Error()
	case errors.Is(err, entities.ErrPersonNotFound), errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = "resource not found"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorDetail{Code: code, Message: msg}}
}
