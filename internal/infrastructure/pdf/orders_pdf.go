// Package pdf genera el reporte de pedidos que descarga el panel ("Exportar").
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + título     │  Generado por + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: pedidos por estado                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Cliente | Fecha | Estado | Total                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: suma de pedidos no cancelados                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-llantas/internal/application/ports"
	"github.com/jhoicas/panel-llantas/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.OrdersExporter = (*MarotoOrdersGenerator)(nil)

// MarotoOrdersGenerator implementa ports.OrdersExporter usando Maroto v2.
type MarotoOrdersGenerator struct{}

// NewMarotoOrdersGenerator construye el generador.
func NewMarotoOrdersGenerator() *MarotoOrdersGenerator { return &MarotoOrdersGenerator{} }

// GenerateOrdersPDF genera el PDF y devuelve sus bytes.
func (g *MarotoOrdersGenerator) GenerateOrdersPDF(_ context.Context, rep ports.OrdersReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de pedidos", true).
		WithAuthor(nonEmpty(rep.GeneratedBy, rep.Store), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rep.Orders))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableOrderRows(rep.Orders)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(rep.Orders))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda + título (izq) y autor + fecha (der).
func headerRow(rep ports.OrdersReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(rep.Store, "Panel"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("REPORTE DE PEDIDOS", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado por: "+nonEmpty(rep.GeneratedBy, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Fecha: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d pedidos", len(rep.Orders)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 13,
			}),
		),
	)
}

// summaryRow: cantidad de pedidos por estado, en el orden del selector.
func summaryRow(orders []entity.Order) core.Row {
	counts := make(map[entity.OrderStatus]int, len(entity.OrderStatuses))
	for _, o := range orders {
		counts[o.Estado]++
	}
	parts := make([]string, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		parts = append(parts, fmt.Sprintf("%s: %d", statusLabel(st), counts[st]))
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN POR ESTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(strings.Join(parts, "   |   "), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de pedidos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).
		WithStyle(&props.Cell{BackgroundColor: colorPrimary}).
		Add(
			h("N°", 1, align.Center),
			h("Cliente", 4, align.Left),
			h("Fecha", 2, align.Center),
			h("Estado", 2, align.Center),
			h("Total", 3, align.Right),
		)
}

// tableOrderRows: una fila por pedido.
func tableOrderRows(orders []entity.Order) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		fecha := "—"
		if !o.CreatedAt.IsZero() {
			fecha = o.CreatedAt.Format("02/01/2006")
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("#%d", o.ID),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				o.Cliente.DisplayName(),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fecha,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				statusLabel(o.Estado),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(o.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total vendido, sin pedidos cancelados.
func totalRow(orders []entity.Order) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL VENDIDO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(entity.SalesTotal(orders)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s entity.OrderStatus) string {
	if s == "" {
		return "—"
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea en soles con dos decimales y comas de miles.
// Ej: 1234.5 → "S/ 1,234.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return "S/ " + sign + string(buf) + "." + frac
}
