package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// UpdateOrderStatusRequest cuerpo de PUT /panel/pedidos/:id/estado.
type UpdateOrderStatusRequest struct {
	Estado string `json:"estado"`
}

// CustomerResponse comprador del pedido.
type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        int64            `json:"id"`
	Cliente   CustomerResponse `json:"cliente"`
	Total     decimal.Decimal  `json:"total"`
	Estado    string           `json:"estado"`
	CreatedAt time.Time        `json:"createdAt"`
}

// OrderListResponse pedidos más los estados que acepta el selector.
type OrderListResponse struct {
	Items   []OrderResponse `json:"items"`
	Estados []string        `json:"estados"`
	Total   int             `json:"total"`
}

// FromOrder mapea la entidad; el cliente sin nombre se muestra como "Anónimo".
func FromOrder(o entity.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Cliente:   CustomerResponse{Name: o.Cliente.DisplayName(), Email: o.Cliente.Email},
		Total:     o.Total,
		Estado:    string(o.Estado),
		CreatedAt: o.CreatedAt,
	}
}
