package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DashboardKPIs indicadores calculados sobre el workspace del operador.
type DashboardKPIs struct {
	TotalProductos    int             `json:"totalProductos"`
	ProductosSinStock int             `json:"productosSinStock"`
	PedidosPendientes int             `json:"pedidosPendientes"`
	VentasTotales     decimal.Decimal `json:"ventasTotales"`
}

// DashboardResponse resumen del backend (sin transformar) más indicadores locales.
type DashboardResponse struct {
	Resumen     json.RawMessage `json:"resumen"`
	Indicadores DashboardKPIs   `json:"indicadores"`
}
