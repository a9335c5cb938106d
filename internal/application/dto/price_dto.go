package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSpec elemento del upsert masivo: con ID actualiza, sin ID inserta.
// Las fechas viajan como "2006-01-02"; nil significa límite abierto.
type PriceSpec struct {
	ID          *int            `json:"id"`
	CustomerID  int             `json:"customer_id" validate:"required"`
	ProductCode string          `json:"product_code" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
}

// PriceStatusRequest elemento del cambio masivo de estado de borrado.
type PriceStatusRequest struct {
	ID       int    `json:"id" validate:"required"`
	DeleteYn string `json:"delete_yn" validate:"required,oneof=N Y"`
}

// CheckOverlapRequest consulta de solapamiento para un intervalo candidato.
type CheckOverlapRequest struct {
	CustomerID  int     `json:"customer_id" validate:"required"`
	ProductCode string  `json:"product_code" validate:"required"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// PriceListRequest filtros del listado de tarifas. Todos son opcionales y
// componibles entre sí.
type PriceListRequest struct {
	CustomerID   *int    `query:"customer_id"`
	ProductCode  *string `query:"product_code"`
	StartDate    *string `query:"start_date"`
	EndDate      *string `query:"end_date"`
	TargetDate   *string `query:"target_date"`
	CustomerText string  `query:"customer_text"`
	ProductText  string  `query:"product_text"`
	Status       string  `query:"status"` // all | active | deleted
	SortBy       string  `query:"sort"`
	SortDir      string  `query:"order"`
	PageRequest
}

// PriceResponse salida de una ventana de tarifa. Los campos de
// enriquecimiento (nombres y ruta de categoría) se completan en lectura.
type PriceResponse struct {
	ID          int             `json:"id"`
	CustomerID  int             `json:"customer_id"`
	ProductCode string          `json:"product_code"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   *string         `json:"start_date,omitempty"`
	EndDate     *string         `json:"end_date,omitempty"`
	InsertedAt  time.Time       `json:"inserted_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	DeleteYn    string          `json:"delete_yn"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`

	CustomerName string `json:"customer_name,omitempty"`
	ProductName  string `json:"product_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	CategoryPath string `json:"category_path,omitempty"`
}

// PriceListResponse lista paginada de tarifas.
type PriceListResponse struct {
	Items []PriceResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
