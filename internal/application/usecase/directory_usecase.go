package usecase

import (
	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

// DirectoryUseCase listados de solo lectura del directorio de clientes y del
// catálogo de productos, para poblar los selectores de la UI de tarifas.
type DirectoryUseCase struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(customers repository.CustomerRepository, products repository.ProductRepository) *DirectoryUseCase {
	return &DirectoryUseCase{customers: customers, products: products}
}

// ListCustomers lista clientes con paginación.
func (uc *DirectoryUseCase) ListCustomers(limit, offset int) ([]dto.CustomerResponse, error) {
	list, err := uc.customers.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CustomerResponse{
			ID:                 c.ID,
			Name:               c.Name,
			RepresentativeName: c.RepresentativeName,
			Tel:                c.Tel,
		})
	}
	return items, nil
}

// GetCustomer obtiene un cliente por ID.
func (uc *DirectoryUseCase) GetCustomer(id int) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CustomerResponse{
		ID:                 customer.ID,
		Name:               customer.Name,
		RepresentativeName: customer.RepresentativeName,
		Tel:                customer.Tel,
	}, nil
}

// ListProducts lista productos con paginación.
func (uc *DirectoryUseCase) ListProducts(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductResponse{
			Code:       p.Code,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			ListPrice:  p.ListPrice,
		})
	}
	return items, nil
}

// GetProduct obtiene un producto por código.
func (uc *DirectoryUseCase) GetProduct(code string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProductResponse{
		Code:       product.Code,
		Name:       product.Name,
		CategoryID: product.CategoryID,
		ListPrice:  product.ListPrice,
	}, nil
}
