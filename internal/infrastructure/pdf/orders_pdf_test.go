package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "S/ 0.00",
		"99.5":      "S/ 99.50",
		"1234.5":    "S/ 1,234.50",
		"1000000":   "S/ 1,000,000.00",
		"-2500.125": "S/ -2,500.13",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Enviado", statusLabel(entity.OrderEnviado))
	assert.Equal(t, "—", statusLabel(""))
}

func TestGenerateOrdersPDF(t *testing.T) {
	rep := ports.OrdersReport{
		Store:       "Llantas del Sur",
		GeneratedBy: "Ana",
		GeneratedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Orders: []entity.Order{
			{ID: 12, Cliente: entity.Customer{Name: "Luis"}, Total: decimal.RequireFromString("450.90"), Estado: entity.OrderEnviado, CreatedAt: time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)},
			{ID: 13, Total: decimal.NewFromInt(80), Estado: entity.OrderPendiente},
		},
	}

	out, err := NewMarotoOrdersGenerator().GenerateOrdersPDF(context.Background(), rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateOrdersPDF_SinPedidos(t *testing.T) {
	out, err := NewMarotoOrdersGenerator().GenerateOrdersPDF(context.Background(), ports.OrdersReport{GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
