package usecase

import (
	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/interval"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

// PriceEnrichmentUseCase proyector de solo lectura: decora ventanas de tarifa
// con el nombre del cliente, el nombre del producto y el nombre y la ruta
// completa de su categoría. Nunca persiste nada.
type PriceEnrichmentUseCase struct {
	customers  repository.CustomerRepository
	products   repository.ProductRepository
	categories *CategoryUseCase
}

// NewPriceEnrichmentUseCase construye el proyector.
func NewPriceEnrichmentUseCase(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	categories *CategoryUseCase,
) *PriceEnrichmentUseCase {
	return &PriceEnrichmentUseCase{customers: customers, products: products, categories: categories}
}

// Enrich decora una ventana de tarifa. Cliente y producto son referencias
// obligatorias del modelo: si alguna no resuelve, falla con ErrIntegrity. La
// categoría en cambio es opcional: si el producto no está clasificado, los
// campos de categoría quedan vacíos.
func (uc *PriceEnrichmentUseCase) Enrich(price *entity.Price) (*dto.PriceResponse, error) {
	out, err := uc.EnrichAll([]*entity.Price{price})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// EnrichAll decora un lote resolviendo cada cliente, producto y ruta de
// categoría una sola vez.
func (uc *PriceEnrichmentUseCase) EnrichAll(prices []*entity.Price) ([]dto.PriceResponse, error) {
	customerNames := make(map[int]string)
	productsByCode := make(map[string]*entity.Product)
	categoryNames := make(map[int]string)
	categoryPaths := make(map[int]string)

	items := make([]dto.PriceResponse, 0, len(prices))
	for _, price := range prices {
		resp := toPriceResponse(price)

		name, ok := customerNames[price.CustomerID]
		if !ok {
			customer, err := uc.customers.GetByID(price.CustomerID)
			if err != nil {
				return nil, err
			}
			if customer == nil {
				return nil, domain.ErrIntegrity
			}
			name = customer.Name
			customerNames[price.CustomerID] = name
		}
		resp.CustomerName = name

		product, ok := productsByCode[price.ProductCode]
		if !ok {
			var err error
			product, err = uc.products.GetByCode(price.ProductCode)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrIntegrity
			}
			productsByCode[price.ProductCode] = product
		}
		resp.ProductName = product.Name

		if product.CategoryID != nil {
			catID := *product.CategoryID
			if _, ok := categoryNames[catID]; !ok {
				category, err := uc.categories.GetByID(catID)
				if err == nil && category != nil {
					categoryNames[catID] = category.Name
					if path, err := uc.categories.Path(catID); err == nil {
						categoryPaths[catID] = path
					}
				} else {
					// Enlace de categoría ausente: los campos quedan vacíos.
					categoryNames[catID] = ""
					categoryPaths[catID] = ""
				}
			}
			resp.CategoryName = categoryNames[catID]
			resp.CategoryPath = categoryPaths[catID]
		}

		items = append(items, *resp)
	}
	return items, nil
}

func toPriceResponse(p *entity.Price) *dto.PriceResponse {
	if p == nil {
		return nil
	}
	return &dto.PriceResponse{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		ProductCode: p.ProductCode,
		Amount:      p.Amount,
		StartDate:   formatBound(p.StartDate),
		EndDate:     formatBound(p.EndDate),
		InsertedAt:  p.InsertedAt,
		UpdatedAt:   p.UpdatedAt,
		DeleteYn:    p.DeleteYn,
		DeletedAt:   p.DeletedAt,
	}
}

func formatBound(b interval.Bound) *string {
	d, ok := b.Date()
	if !ok {
		return nil
	}
	s := d.Format(interval.DateLayout)
	return &s
}
