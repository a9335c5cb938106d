package dto

import "github.com/shopspring/decimal"

// CustomerResponse proyección de solo lectura del directorio de clientes.
type CustomerResponse struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	RepresentativeName string `json:"representative_name,omitempty"`
	Tel                string `json:"tel,omitempty"`
}

// ProductResponse proyección de solo lectura del catálogo de productos.
type ProductResponse struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID *int            `json:"category_id,omitempty"`
	ListPrice  decimal.Decimal `json:"list_price"`
}
