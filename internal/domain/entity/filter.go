package entity

// SortKey criterio de orden del catálogo.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortStockLow  SortKey = "stock-low"
)

// FilterState filtros del catálogo. Un campo vacío no filtra.
type FilterState struct {
	Ancho        string
	Perfil       string
	Aro          string
	TipoVehiculo string
	Sort         SortKey
}

// Active indica si hay al menos un predicado de atributo activo.
func (f FilterState) Active() bool {
	return f.Ancho != "" || f.Perfil != "" || f.Aro != "" || f.TipoVehiculo != ""
}

// Cleared devuelve los filtros sin predicados, conservando el orden elegido.
func (f FilterState) Cleared() FilterState {
	return FilterState{Sort: f.Sort}
}
