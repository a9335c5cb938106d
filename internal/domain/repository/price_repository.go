package repository

import (
	"time"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/interval"
)

// PriceFilter filtros componibles para el listado de tarifas. Los punteros
// nil significan "sin filtro"; los textos ya llegan normalizados (sin
// acentos, minúsculas) desde el caso de uso.
type PriceFilter struct {
	CustomerID   *int
	ProductCode  *string
	StartDate    *time.Time
	EndDate      *time.Time
	TargetDate   *time.Time // fecha "vigente en", inclusiva en ambos extremos
	CustomerText string
	ProductText  string
	Status       string // "", "all", "active", "deleted"
	SortBy       string // columna lógica; el adaptador la traduce con whitelist
	SortDir      string // "asc" | "desc"
	Limit        int
	Offset       int
}

// PriceRepository define el puerto de persistencia para ventanas de tarifa.
type PriceRepository interface {
	Create(price *entity.Price) error
	GetByID(id int) (*entity.Price, error)
	Update(price *entity.Price) error
	// HardDelete elimina la fila de forma permanente. Operación administrativa
	// separada del borrado lógico.
	HardDelete(id int) error
	// FindOverlapping devuelve las ventanas activas del par (cliente,
	// producto) cuyo intervalo intersecta el candidato, con semántica de
	// límites abiertos −∞/+∞ e inclusiva en ambos extremos.
	FindOverlapping(customerID int, productCode string, start, end interval.Bound) ([]*entity.Price, error)
	// ListByCustomerAndProduct devuelve el historial del par ignorando el
	// flag de borrado.
	ListByCustomerAndProduct(customerID int, productCode string) ([]*entity.Price, error)
	// ListFiltered devuelve la página solicitada y el total sin paginar.
	ListFiltered(filter PriceFilter) ([]*entity.Price, int, error)
}
