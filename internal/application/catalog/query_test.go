package catalog_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-llantas/internal/application/catalog"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

func llanta(id int64, nombre, marca, sku string, ancho, perfil, aro int, tipo, precio string, stock int) entity.Product {
	return entity.Product{
		ID: id, Nombre: nombre, Marca: marca, SKU: sku,
		Ancho: ancho, Perfil: perfil, Aro: aro, TipoVehiculo: tipo,
		Precio: decimal.RequireFromString(precio), Stock: stock,
	}
}

func catalogoBase() []entity.Product {
	return []entity.Product{
		llanta(1, "Pilot Sport 4", "Michelin", "MICH-2055516", 205, 55, 16, "Auto", "450.00", 5),
		llanta(2, "Turanza T005", "Bridgestone", "BRI-1956515", 195, 65, 15, "Auto", "320.00", 1),
		llanta(3, "Wrangler AT", "Goodyear", "GY-2657017", 265, 70, 17, "Camioneta", "610.50", 3),
		llanta(4, "Energy Saver", "Michelin", "MICH-1956515", 195, 65, 15, "Auto", "320.00", 8),
		llanta(5, "Cargo Pro", "Continental", "CON-2157516", 215, 75, 16, "Camión", "780.00", 0),
	}
}

func ids(list []entity.Product) []int64 {
	out := make([]int64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestView_FiltroAnchoEscenario(t *testing.T) {
	products := []entity.Product{
		{ID: 1, Ancho: 205, Precio: decimal.NewFromInt(100)},
		{ID: 2, Ancho: 195, Precio: decimal.NewFromInt(80)},
	}

	got := catalog.View(products, "", entity.FilterState{Ancho: "205", Sort: entity.SortNewest})

	require.Len(t, got, 1)
	assert.Equal(t, 205, got[0].Ancho)
	assert.True(t, got[0].Precio.Equal(decimal.NewFromInt(100)))
}

func TestView_StockLowEscenario(t *testing.T) {
	products := []entity.Product{{ID: 1, Stock: 5}, {ID: 2, Stock: 1}, {ID: 3, Stock: 3}}

	got := catalog.View(products, "", entity.FilterState{Sort: entity.SortStockLow})

	stocks := []int{got[0].Stock, got[1].Stock, got[2].Stock}
	assert.Equal(t, []int{1, 3, 5}, stocks)
}

func TestView_BusquedaSinMayusculasEnNombreMarcaSKU(t *testing.T) {
	all := catalogoBase()

	assert.Equal(t, []int64{4, 1}, ids(catalog.View(all, "michelin", entity.FilterState{Sort: entity.SortNewest})))
	assert.Equal(t, []int64{3}, ids(catalog.View(all, "gy-265", entity.FilterState{Sort: entity.SortNewest})))
	assert.Equal(t, []int64{2}, ids(catalog.View(all, "TURANZA", entity.FilterState{Sort: entity.SortNewest})))
	// modelo no participa en la búsqueda
	assert.Empty(t, catalog.View(all, "zzz", entity.FilterState{}))
}

func TestView_BusquedaConAcentos(t *testing.T) {
	all := append(catalogoBase(), llanta(6, "Económica Ñandú", "Lima Caucho", "LC-1", 175, 70, 13, "Auto", "150", 2))

	assert.Equal(t, []int64{6}, ids(catalog.View(all, "ECONÓMICA ÑANDÚ", entity.FilterState{})))
	assert.Equal(t, []int64{5}, ids(catalog.View(all, "CARGO", entity.FilterState{TipoVehiculo: "Camión"})))
}

func TestView_FiltrosSeCombinanConAND(t *testing.T) {
	all := catalogoBase()

	got := catalog.View(all, "", entity.FilterState{Ancho: "195", Perfil: "65", Aro: "15", Sort: entity.SortNewest})
	assert.Equal(t, []int64{4, 2}, ids(got))

	got = catalog.View(all, "bri", entity.FilterState{Ancho: "195", Perfil: "65", Aro: "15"})
	assert.Equal(t, []int64{2}, ids(got))

	got = catalog.View(all, "", entity.FilterState{Ancho: "195", TipoVehiculo: "Camioneta"})
	assert.Empty(t, got)
}

func TestView_FiltroInvalidoNoCoincideConNada(t *testing.T) {
	all := catalogoBase()
	assert.Empty(t, catalog.View(all, "", entity.FilterState{Aro: "R16"}))
	assert.Empty(t, catalog.View(all, "", entity.FilterState{TipoVehiculo: "Moto"}))
}

func TestView_OrdenNewestPorIDDescendente(t *testing.T) {
	got := catalog.View(catalogoBase(), "", entity.FilterState{Sort: entity.SortNewest})
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids(got))
}

// Los empates de precio (ids 2 y 4) conservan el orden de entrada.
func TestView_OrdenEstableEnEmpates(t *testing.T) {
	all := catalogoBase()

	asc := catalog.View(all, "", entity.FilterState{Sort: entity.SortPriceAsc})
	assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(asc))

	desc := catalog.View(all, "", entity.FilterState{Sort: entity.SortPriceDesc})
	assert.Equal(t, []int64{5, 3, 1, 2, 4}, ids(desc))
}

func TestView_PriceAscInvertidoEsPriceDescSinDuplicados(t *testing.T) {
	products := []entity.Product{
		llanta(1, "a", "", "a", 0, 0, 0, "", "300", 1),
		llanta(2, "b", "", "b", 0, 0, 0, "", "120.5", 1),
		llanta(3, "c", "", "c", 0, 0, 0, "", "999", 1),
		llanta(4, "d", "", "d", 0, 0, 0, "", "45", 1),
	}

	asc := catalog.View(products, "", entity.FilterState{Sort: entity.SortPriceAsc})
	desc := catalog.View(products, "", entity.FilterState{Sort: entity.SortPriceDesc})
	slices.Reverse(asc)

	if diff := cmp.Diff(ids(desc), ids(asc)); diff != "" {
		t.Errorf("price-asc invertido difiere de price-desc (-desc +asc):\n%s", diff)
	}
}

func TestView_IdempotenteYSinEfectos(t *testing.T) {
	all := catalogoBase()
	before := slices.Clone(all)
	f := entity.FilterState{Aro: "15", Sort: entity.SortStockLow}

	first := catalog.View(all, "mich", f)
	second := catalog.View(all, "mich", f)

	assert.Equal(t, first, second)
	assert.Equal(t, before, all, "la vista no debe modificar el catálogo completo")
}

// Todo resultado es subconjunto del catálogo y cumple los predicados activos.
func TestView_SubconjuntoQueCumplePredicados(t *testing.T) {
	all := catalogoBase()
	terms := []string{"", "mich", "o", "BRI", "2157516"}
	filters := []entity.FilterState{
		{},
		{Ancho: "195"},
		{Aro: "16", Sort: entity.SortPriceDesc},
		{TipoVehiculo: "Auto", Sort: entity.SortStockLow},
		{Perfil: "65", Aro: "15", Sort: entity.SortPriceAsc},
	}
	byID := make(map[int64]entity.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	for _, term := range terms {
		for _, f := range filters {
			for _, p := range catalog.View(all, term, f) {
				orig, ok := byID[p.ID]
				require.True(t, ok)
				assert.Equal(t, orig, p)
				if f.Ancho != "" {
					assert.Equal(t, f.Ancho, strconv.Itoa(p.Ancho))
				}
				if f.Aro != "" {
					assert.Equal(t, f.Aro, strconv.Itoa(p.Aro))
				}
				if f.TipoVehiculo != "" {
					assert.Equal(t, f.TipoVehiculo, p.TipoVehiculo)
				}
			}
		}
	}
}

func TestView_SortDesconocidoConservaOrden(t *testing.T) {
	got := catalog.View(catalogoBase(), "", entity.FilterState{Sort: "popular"})
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(got))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, entity.SortPriceAsc, catalog.ParseSort("price-asc"))
	assert.Equal(t, entity.SortStockLow, catalog.ParseSort("stock-low"))
	assert.Equal(t, entity.SortNewest, catalog.ParseSort(""))
	assert.Equal(t, entity.SortNewest, catalog.ParseSort("rating"))
}

func TestBuildOptions(t *testing.T) {
	opts := catalog.BuildOptions(append(catalogoBase(), entity.Product{ID: 9}))

	assert.Equal(t, []int{195, 205, 215, 265}, opts.Anchos)
	assert.Equal(t, []int{55, 65, 70, 75}, opts.Perfiles)
	assert.Equal(t, []int{15, 16, 17}, opts.Aros)
	assert.Equal(t, []string{"Auto", "Camioneta", "Camión"}, opts.Tipos)
}

