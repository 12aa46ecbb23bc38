package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

func TestSalesTotal_IgnoraCancelados(t *testing.T) {
	orders := []entity.Order{
		{ID: 1, Total: decimal.RequireFromString("100.50"), Estado: entity.OrderPagado},
		{ID: 2, Total: decimal.RequireFromString("40"), Estado: entity.OrderCancelado},
		{ID: 3, Total: decimal.RequireFromString("9.50"), Estado: entity.OrderPendiente},
	}
	assert.True(t, entity.SalesTotal(orders).Equal(decimal.NewFromInt(110)))
	assert.True(t, entity.SalesTotal(nil).IsZero())
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, st := range entity.OrderStatuses {
		assert.True(t, st.Valid(), string(st))
	}
	assert.False(t, entity.OrderStatus("perdido").Valid())
	assert.False(t, entity.OrderStatus("").Valid())
}

func TestCustomer_DisplayName(t *testing.T) {
	assert.Equal(t, "Anónimo", entity.Customer{}.DisplayName())
	assert.Equal(t, "Luis", entity.Customer{Name: "Luis"}.DisplayName())
}

func TestProductInput_Valid(t *testing.T) {
	ok := entity.ProductInput{Nombre: "Pilot", SKU: "MICH-1", Precio: decimal.NewFromInt(1)}
	assert.True(t, ok.Valid())

	sinSKU := ok
	sinSKU.SKU = ""
	assert.False(t, sinSKU.Valid())

	precioCero := ok
	precioCero.Precio = decimal.Zero
	assert.False(t, precioCero.Valid())

	stockNegativo := ok
	stockNegativo.Stock = -1
	assert.False(t, stockNegativo.Valid())
}

func TestProductInput_ApplyToConservaIDEImagen(t *testing.T) {
	p := entity.Product{ID: 9, Nombre: "Viejo", ImagenURL: "https://cdn/9.png", Stock: 1}
	in := entity.ProductInput{Nombre: "Nuevo", SKU: "X", Precio: decimal.NewFromInt(10), Stock: 3}

	got := in.ApplyTo(p)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "https://cdn/9.png", got.ImagenURL)
	assert.Equal(t, "Nuevo", got.Nombre)
	assert.Equal(t, 3, got.Stock)
	assert.Equal(t, "Viejo", p.Nombre)
}

func TestFilterState_ActiveYCleared(t *testing.T) {
	f := entity.FilterState{Aro: "16", Sort: entity.SortPriceAsc}
	assert.True(t, f.Active())
	cleared := f.Cleared()
	assert.False(t, cleared.Active())
	assert.Equal(t, entity.SortPriceAsc, cleared.Sort)
}
