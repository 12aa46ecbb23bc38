package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/domain"
)

func errorBody(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Code: code, Message: msg}
}

// writeError traduce errores de dominio y del backend a la respuesta HTTP.
// Los 4xx del backend conservan su código; red y 5xx responden 502.
func writeError(c *fiber.Ctx, err error) error {
	return writeErrorMsg(c, err, domain.UserMessage(err))
}

func writeErrorMsg(c *fiber.Ctx, err error, msg string) error {

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case domain.KindAuth:
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody("UNAUTHORIZED", msg))
		case domain.KindAuthorization:
			return c.Status(fiber.StatusForbidden).JSON(errorBody("FORBIDDEN", msg))
		case domain.KindRateLimited:
			return c.Status(fiber.StatusTooManyRequests).JSON(errorBody("RATE_LIMITED", msg))
		case domain.KindValidation:
			status := apiErr.Status
			if status < 400 || status > 499 {
				status = fiber.StatusBadRequest
			}
			return c.Status(status).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg, Details: apiErr.Details})
		case domain.KindTransport:
			return c.Status(fiber.StatusBadGateway).JSON(errorBody("BACKEND_UNREACHABLE", msg))
		default:
			return c.Status(fiber.StatusBadGateway).JSON(errorBody("BACKEND_ERROR", msg))
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("VALIDATION", msg))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody("NOT_FOUND", msg))
	case errors.Is(err, domain.ErrRowBusy):
		return c.Status(fiber.StatusConflict).JSON(errorBody("ROW_BUSY", msg))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(errorBody("FORBIDDEN", msg))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(errorBody("UNAUTHORIZED", msg))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody("INTERNAL", msg))
}

// paramID lee el parámetro :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_ID", "id inválido"))
}
