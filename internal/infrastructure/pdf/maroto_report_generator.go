// Package pdf implementa la generación del reporte de estado de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del almacén  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Items | Insuficientes | Excedentes | Valor total  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Categoría | Stock | Min | Max |   │
//	│         Estado | Valor                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorWarn    = &props.Color{Red: 180, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.StatusPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	appName        string
	currencyPrefix string
	printer        *message.Printer
}

// NewMarotoReportGenerator construye el generador. currencyPrefix se antepone
// a los montos (ej. "$").
func NewMarotoReportGenerator(appName, currencyPrefix string) *MarotoReportGenerator {
	return &MarotoReportGenerator{
		appName:        appName,
		currencyPrefix: currencyPrefix,
		// Locale es-CO: separador de miles con punto, como espera el almacén
		printer: message.NewPrinter(language.MustParse("es-CO")),
	}
}

// GenerateStatusPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStatusPDF(_ context.Context, rep *report.StatusReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(rep.Title, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableRows(rep) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del almacén (izq) y título + fecha (der).
func (g *MarotoReportGenerator) headerRow(rep *report.StatusReport) core.Row {
	fecha := rep.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(rep.Title, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: conteos agregados y valoración total del inventario.
func (g *MarotoReportGenerator) summaryRow(rep *report.StatusReport) core.Row {
	stat := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 5, Color: color,
			}),
		)
	}
	return row.New(14).Add(
		stat("Items", g.printer.Sprintf("%d", rep.TotalItems), colorPrimary),
		stat("Stock insuficiente", g.printer.Sprintf("%d", rep.Insufficient), colorAlert),
		stat("Stock excedente", g.printer.Sprintf("%d", rep.Excess), colorWarn),
		stat("Valor total", g.money(rep.TotalValue), colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de estado.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Min/Max", 1, align.Center),
		h("Estado", 1, align.Center),
		h("Valor", 2, align.Right),
	)
}

// tableRows: una fila por item, con el estado coloreado.
func (g *MarotoReportGenerator) tableRows(rep *report.StatusReport) []core.Row {
	result := make([]core.Row, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.ItemCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.CategoryName, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(
				g.printer.Sprintf("%d", r.CurrentStock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d/%d", r.MinStock, r.MaxStock),
				props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(1).Add(text.New(statusLabel(r.Status), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1,
				Color: statusColor(r.Status),
			})),
			col.New(2).Add(text.New(
				g.money(r.StockValue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case inventory.StatusInsufficient:
		return "INSUF."
	case inventory.StatusExcess:
		return "EXCESO"
	default:
		return "NORMAL"
	}
}

func statusColor(status string) *props.Color {
	switch status {
	case inventory.StatusInsufficient:
		return colorAlert
	case inventory.StatusExcess:
		return colorWarn
	default:
		return colorGray
	}
}

// money antepone el prefijo monetario y agrega separadores de miles según el
// locale del printer. Los montos se redondean a la unidad.
func (g *MarotoReportGenerator) money(d decimal.Decimal) string {
	return g.currencyPrefix + g.printer.Sprintf("%d", d.Round(0).IntPart())
}
