package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/application/session"
	"github.com/jhoicas/panel-llantas/internal/application/workspace"
	"github.com/jhoicas/panel-llantas/internal/domain"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// Locals keys de la región protegida.
const (
	LocalSession     = "session"
	LocalWorkspace   = "workspace"
	LocalCredentials = "credentials"
	LocalRequestID   = "request_id"
)

// SessionGuard monta el guard en cada petición a la región protegida.
// Autorizado: carga el workspace en locals y sigue. No autorizado o error:
// 303 al destino que decidió el guard, o 503 si la política es reintentar.
func SessionGuard(guard *session.Guard, workspaces *workspace.Registry, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds := credentialsFrom(c)

		m := guard.Mount(c.UserContext(), creds)
		defer m.Unmount()
		d := m.Wait()

		switch {
		case d.State == session.Authorized:
			c.Locals(LocalCredentials, creds)
			c.Locals(LocalSession, d.Session)
			c.Locals(LocalWorkspace, workspaces.Acquire(d.Session.Identity))
			_, err := m.Render(c.Next)
			return err
		case d.Retry:
			log.Warn().Err(d.Err).Str("path", c.Path()).Msg("comprobación de sesión fallida")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.RetryResponse{
				Code:    "SESSION_CHECK_FAILED",
				Message: domain.UserMessage(d.Err),
				Retry:   c.OriginalURL(),
			})
		case d.Redirect != "":
			return c.Redirect(d.Redirect, fiber.StatusSeeOther)
		default:
			// montaje cancelado: el cliente se fue
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}
	}
}

// credentialsFrom copia la cabecera Cookie; fasthttp reutiliza sus buffers.
func credentialsFrom(c *fiber.Ctx) ports.Credentials {
	return ports.Credentials{Cookie: strings.Clone(c.Get(fiber.HeaderCookie))}
}

// GetCredentials credenciales del operador (después de SessionGuard).
func GetCredentials(c *fiber.Ctx) ports.Credentials {
	creds, _ := c.Locals(LocalCredentials).(ports.Credentials)
	return creds
}

// GetSession sesión resuelta (después de SessionGuard).
func GetSession(c *fiber.Ctx) entity.Session {
	s, _ := c.Locals(LocalSession).(entity.Session)
	return s
}

// GetWorkspace workspace del operador (después de SessionGuard).
func GetWorkspace(c *fiber.Ctx) *workspace.Workspace {
	ws, _ := c.Locals(LocalWorkspace).(*workspace.Workspace)
	return ws
}
