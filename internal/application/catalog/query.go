// Package catalog deriva la vista filtrada y ordenada del catálogo de llantas.
//
// La vista es una función pura de (catálogo completo, término de búsqueda, filtros):
//
//  1. Búsqueda de texto sin distinguir mayúsculas sobre nombre, marca y SKU.
//  2. Filtros de atributo (ancho, perfil, aro, tipoVehiculo) combinados con AND.
//  3. Orden estable por la clave elegida; los empates conservan el orden del paso 2.
//
// Nunca modifica el slice de entrada; se recalcula completa en cada llamada.
package catalog

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// View aplica búsqueda, filtros y orden sobre products y devuelve un slice nuevo.
func View(products []entity.Product, term string, filters entity.FilterState) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	match := newMatcher(term, filters)
	for _, p := range products {
		if match(p) {
			out = append(out, p)
		}
	}
	sortProducts(out, filters.Sort)
	return out
}

// newMatcher compila la búsqueda y los predicados una sola vez por vista.
func newMatcher(term string, f entity.FilterState) func(entity.Product) bool {
	// cases.Caser no es seguro para uso concurrente: uno por vista.
	folder := cases.Fold()
	needle := folder.String(term)

	ancho := intPredicate(f.Ancho)
	perfil := intPredicate(f.Perfil)
	aro := intPredicate(f.Aro)

	return func(p entity.Product) bool {
		if needle != "" &&
			!strings.Contains(folder.String(p.Nombre), needle) &&
			!strings.Contains(folder.String(p.Marca), needle) &&
			!strings.Contains(folder.String(p.SKU), needle) {
			return false
		}
		if !ancho(p.Ancho) || !perfil(p.Perfil) || !aro(p.Aro) {
			return false
		}
		if f.TipoVehiculo != "" && p.TipoVehiculo != f.TipoVehiculo {
			return false
		}
		return true
	}
}

// intPredicate interpreta un filtro numérico. Vacío acepta todo; un valor que no
// es entero no coincide con ninguna fila.
func intPredicate(raw string) func(int) bool {
	if raw == "" {
		return func(int) bool { return true }
	}
	want, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return func(int) bool { return false }
	}
	return func(v int) bool { return v == want }
}

// sortProducts ordena en sitio con un sort estable.
func sortProducts(list []entity.Product, key entity.SortKey) {
	var cmp func(a, b entity.Product) int
	switch key {
	case entity.SortNewest:
		cmp = func(a, b entity.Product) int { return compareInt64(b.ID, a.ID) }
	case entity.SortPriceAsc:
		cmp = func(a, b entity.Product) int { return a.Precio.Cmp(b.Precio) }
	case entity.SortPriceDesc:
		cmp = func(a, b entity.Product) int { return b.Precio.Cmp(a.Precio) }
	case entity.SortStockLow:
		cmp = func(a, b entity.Product) int { return a.Stock - b.Stock }
	default:
		return
	}
	slices.SortStableFunc(list, cmp)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseSort convierte el parámetro de la petición; vacío o desconocido es SortNewest.
func ParseSort(raw string) entity.SortKey {
	switch k := entity.SortKey(raw); k {
	case entity.SortNewest, entity.SortPriceAsc, entity.SortPriceDesc, entity.SortStockLow:
		return k
	default:
		return entity.SortNewest
	}
}
