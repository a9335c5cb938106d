package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercial-api/internal/domain/interval"
)

// Price ventana de vigencia de una tarifa para un par (cliente, producto).
// StartDate/EndDate abiertos significan "desde siempre" y "sin vencimiento".
// El borrado es lógico (DeleteYn) y reversible; el borrado físico existe como
// operación administrativa aparte.
type Price struct {
	ID          int
	CustomerID  int
	ProductCode string
	Amount      decimal.Decimal
	StartDate   interval.Bound
	EndDate     interval.Bound
	InsertedAt  time.Time
	UpdatedAt   *time.Time
	DeleteYn    string
	DeletedAt   *time.Time
}

// Active indica si la ventana no está marcada como borrada.
func (p *Price) Active() bool {
	return p.DeleteYn != DeleteYes
}
