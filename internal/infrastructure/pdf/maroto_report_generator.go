// Package pdf implementa la representación gráfica del reporte de saldos del
// kardex (una fila por par producto/ubicación con saldo distinto de cero).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de saldos + fecha de generación             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Ubicación | Saldo                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de pares reportados                           │
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

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	appinventory "github.com/jhoicas/Kardex-api/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.BalancePDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.BalancePDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateBalancePDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateBalancePDF(_ context.Context, report *dto.BalanceReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de saldos de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, entry := range report.Items {
		m.AddRows(entryRow(entry))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.BalanceReportResponse) core.Row {
	fecha := report.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de saldos de inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(5).Add(text.New("Producto", header)),
		col.New(4).Add(text.New("Ubicación", header)),
		col.New(3).Add(text.New("Saldo", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
	)
}

func entryRow(entry dto.BalanceEntry) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(entry.Product, props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New(entry.Location, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(entry.Quantity.String(), props.Text{
			Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func footerRow(report *dto.BalanceReportResponse) core.Row {
	resumen := fmt.Sprintf("%d pares producto/ubicación con saldo distinto de cero", report.Total)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(resumen, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}
