package http

import (
	"github.com/gofiber/fiber/v2"
)

// RequireLoaded garantiza que el workspace tenga productos y pedidos cargados
// antes del handler. Con ?refresh=1 recarga ambas colecciones. Debe usarse
// DESPUÉS de SessionGuard (necesita LocalWorkspace).
func RequireLoaded() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ws := GetWorkspace(c)
		if ws == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody("UNAUTHORIZED", "sesión no resuelta"))
		}
		force := c.QueryBool("refresh", false)
		if err := ws.Load(c.UserContext(), GetCredentials(c), force); err != nil {
			return writeError(c, err)
		}
		return c.Next()
	}
}
