package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/application/session"
	"github.com/jhoicas/panel-llantas/internal/domain"
)

// EntryHandler punto de entrada público: el destino de las redirecciones del guard.
type EntryHandler struct {
	appName string
}

// NewEntryHandler construye el handler.
func NewEntryHandler(appName string) *EntryHandler {
	return &EntryHandler{appName: appName}
}

// Get godoc
// @Summary      Punto de entrada público
// @Description  Con ?error=unauthorized incluye el aviso de acceso denegado.
// @Tags         public
// @Produce      json
// @Param        error  query  string  false  "motivo de la redirección"
// @Success      200    {object}  dto.EntryResponse
// @Router       / [get]
func (h *EntryHandler) Get(c *fiber.Ctx) error {
	out := dto.EntryResponse{App: h.appName, Login: "/auth/login"}
	if c.Query("error") == session.ReasonUnauthorized {
		out.Notice = domain.MsgForbidden
	}
	return c.JSON(out)
}
