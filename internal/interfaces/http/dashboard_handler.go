package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// DashboardHandler maneja el resumen de la tienda.
type DashboardHandler struct {
	backend ports.Backend
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(backend ports.Backend) *DashboardHandler {
	return &DashboardHandler{backend: backend}
}

// GetSummary devuelve el resumen del backend tal cual más los indicadores
// calculados sobre el catálogo y los pedidos del operador.
// GET /panel/dashboard
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.backend.DashboardSummary(c.UserContext(), GetCredentials(c))
	if err != nil {
		return writeError(c, err)
	}

	ws := GetWorkspace(c)
	products := ws.ProductRows().All()
	orders := ws.OrderRows().All()

	kpis := dto.DashboardKPIs{
		TotalProductos: len(products),
		VentasTotales:  entity.SalesTotal(orders),
	}
	for _, p := range products {
		if p.Stock == 0 {
			kpis.ProductosSinStock++
		}
	}
	for _, o := range orders {
		if o.Estado == entity.OrderPendiente {
			kpis.PedidosPendientes++
		}
	}

	return c.JSON(dto.DashboardResponse{Resumen: summary, Indicadores: kpis})
}
