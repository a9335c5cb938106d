package repository

import "github.com/jhoicas/Comercial-api/internal/domain/entity"

// ProductRepository puerto de solo lectura sobre el catálogo de productos.
type ProductRepository interface {
	GetByCode(code string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
