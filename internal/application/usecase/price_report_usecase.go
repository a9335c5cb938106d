package usecase

import (
	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// PriceReportGenerator puerto de generación del listado imprimible.
type PriceReportGenerator interface {
	GeneratePriceReport(items []dto.PriceResponse) ([]byte, error)
}

// reportMaxRows tope de filas del reporte; un listado imprimible más largo no
// tiene sentido y protege la memoria del proceso.
const reportMaxRows = 500

// PriceReportUseCase produce el listado de tarifas en PDF aplicando los
// mismos filtros que el listado JSON.
type PriceReportUseCase struct {
	prices *PriceUseCase
	enrich *PriceEnrichmentUseCase
	gen    PriceReportGenerator
}

// NewPriceReportUseCase construye el caso de uso.
func NewPriceReportUseCase(prices *PriceUseCase, enrich *PriceEnrichmentUseCase, gen PriceReportGenerator) *PriceReportUseCase {
	return &PriceReportUseCase{prices: prices, enrich: enrich, gen: gen}
}

// Generate genera el PDF con los filtros dados. Recorre las páginas del
// listado hasta agotar los resultados o alcanzar el tope de filas.
func (uc *PriceReportUseCase) Generate(in dto.PriceListRequest) ([]byte, error) {
	in.Limit = 100
	in.Offset = 0
	var all []*entity.Price
	for {
		page, total, err := uc.prices.ListFiltered(in)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total || len(all) >= reportMaxRows {
			break
		}
		in.Offset += len(page)
	}
	if len(all) > reportMaxRows {
		all = all[:reportMaxRows]
	}
	items, err := uc.enrich.EnrichAll(all)
	if err != nil {
		return nil, err
	}
	return uc.gen.GeneratePriceReport(items)
}
