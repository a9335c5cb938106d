// Package pdf genera el listado imprimible de tarifas con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente | Producto | Categoría | Vigencia | Tarifa   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de registros                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.PriceReportGenerator = (*PriceReportGenerator)(nil)

// PriceReportGenerator implementa usecase.PriceReportGenerator usando Maroto v2.
type PriceReportGenerator struct{}

// NewPriceReportGenerator construye el generador.
func NewPriceReportGenerator() *PriceReportGenerator { return &PriceReportGenerator{} }

// GeneratePriceReport genera el PDF del listado y devuelve sus bytes.
func (g *PriceReportGenerator) GeneratePriceReport(items []dto.PriceResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Listado de tarifas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(detailRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(12).Add(
		col.New(8).Add(
			text.New("LISTADO DE TARIFAS POR CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, width int) core.Col {
		return col.New(width).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		header("Cliente", 3),
		header("Producto", 3),
		header("Categoría", 2),
		header("Vigencia", 2),
		header("Tarifa", 2),
	)
}

func detailRow(item dto.PriceResponse) core.Row {
	categoria := item.CategoryPath
	if categoria == "" {
		categoria = item.CategoryName
	}
	cell := func(value string, width int, al align.Type) core.Col {
		return col.New(width).Add(text.New(value, props.Text{Size: 7, Top: 1, Align: al}))
	}
	return row.New(5).Add(
		cell(item.CustomerName, 3, align.Left),
		cell(fmt.Sprintf("%s (%s)", item.ProductName, item.ProductCode), 3, align.Left),
		cell(categoria, 2, align.Left),
		cell(formatRange(item.StartDate, item.EndDate), 2, align.Left),
		cell("$ "+item.Amount.StringFixed(2), 2, align.Right),
	)
}

func footerRow(count int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de registros: %d", count), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		),
	)
}

func formatRange(start, end *string) string {
	from := "siempre"
	if start != nil {
		from = *start
	}
	until := "indefinido"
	if end != nil {
		until = *end
	}
	return from + " a " + until
}
