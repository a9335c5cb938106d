package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo, identificado por su código. Solo lectura
// para este servicio: se usa para resolver nombre y categoría al enriquecer
// tarifas.
type Product struct {
	Code       string
	Name       string
	CategoryID *int // nil si el producto no está clasificado
	ListPrice  decimal.Decimal
	InsertedAt time.Time
	DeleteYn   string
}
