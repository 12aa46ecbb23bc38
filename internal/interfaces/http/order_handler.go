package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-llantas/internal/application/dto"
	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// OrderHandler pedidos de la tienda (región protegida).
type OrderHandler struct {
	exporter  ports.OrdersExporter
	storeName string
}

// NewOrderHandler construye el handler.
func NewOrderHandler(exporter ports.OrdersExporter, storeName string) *OrderHandler {
	return &OrderHandler{exporter: exporter, storeName: storeName}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Param        refresh  query  bool  false  "recargar desde el backend"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /panel/pedidos [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders := GetWorkspace(c).OrderRows().All()
	out := dto.OrderListResponse{
		Items:   make([]dto.OrderResponse, 0, len(orders)),
		Estados: make([]string, 0, len(entity.OrderStatuses)),
		Total:   len(orders),
	}
	for _, o := range orders {
		out.Items = append(out.Items, dto.FromOrder(o))
	}
	for _, st := range entity.OrderStatuses {
		out.Estados = append(out.Estados, string(st))
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  Optimista: si el backend falla el pedido conserva su estado anterior.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "estado nuevo"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /panel/pedidos/{id}/estado [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	o, err := GetWorkspace(c).Mutator().ChangeOrderStatus(c.UserContext(), GetCredentials(c), id, entity.OrderStatus(in.Estado))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromOrder(o))
}

// Export godoc
// @Summary      Exportar pedidos
// @Tags         pedidos
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /panel/pedidos/export [get]
func (h *OrderHandler) Export(c *fiber.Ctx) error {
	ws := GetWorkspace(c)
	now := time.Now()
	doc, err := h.exporter.GenerateOrdersPDF(c.UserContext(), ports.OrdersReport{
		Store:       h.storeName,
		GeneratedBy: ws.Profile().Name,
		GeneratedAt: now,
		Orders:      ws.OrderRows().All(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody("EXPORT_FAILED", err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pedidos-%s.pdf"`, now.Format("20060102")))
	return c.Send(doc)
}
