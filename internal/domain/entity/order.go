package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido. Es el único campo que el panel modifica.
type OrderStatus string

const (
	OrderPendiente OrderStatus = "pendiente"
	OrderPagado    OrderStatus = "pagado"
	OrderEnviado   OrderStatus = "enviado"
	OrderEntregado OrderStatus = "entregado"
	OrderCancelado OrderStatus = "cancelado"
)

// OrderStatuses lista los estados en el orden en que los muestra el selector.
var OrderStatuses = []OrderStatus{OrderPendiente, OrderPagado, OrderEnviado, OrderEntregado, OrderCancelado}

// Valid indica si s es uno de los estados conocidos.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Customer datos del comprador asociados al pedido.
type Customer struct {
	Name  string
	Email string
}

// DisplayName devuelve el nombre o "Anónimo" si el pedido no tiene usuario.
func (c Customer) DisplayName() string {
	if c.Name == "" {
		return "Anónimo"
	}
	return c.Name
}

// Order pedido de un cliente.
type Order struct {
	ID        int64
	Cliente   Customer
	Total     decimal.Decimal
	Estado    OrderStatus
	CreatedAt time.Time
}

// Key identifica la fila dentro de una colección.
func (o Order) Key() int64 { return o.ID }

// SalesTotal suma los totales de los pedidos no cancelados.
func SalesTotal(orders []Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Estado == OrderCancelado {
			continue
		}
		sum = sum.Add(o.Total)
	}
	return sum
}
