package dto

import "time"

// SaveCategoryRequest entrada para crear o actualizar una categoría.
type SaveCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Level    int    `json:"level" validate:"required,min=1,max=3"`
	ParentID *int   `json:"parent_id"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID         int        `json:"id"`
	Level      int        `json:"level"`
	ParentID   *int       `json:"parent_id,omitempty"`
	Name       string     `json:"name"`
	InsertedAt time.Time  `json:"inserted_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	DeleteYn   string     `json:"delete_yn"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// CategoryPathResponse proyección de una categoría con sus ancestros
// descompuestos por nivel y la ruta completa renderizada. Alimenta los
// filtros en cascada de la UI; asume como máximo tres niveles.
type CategoryPathResponse struct {
	TopID      *int       `json:"top_id,omitempty"`
	MiddleID   *int       `json:"middle_id,omitempty"`
	LowID      *int       `json:"low_id,omitempty"`
	CategoryID int        `json:"category_id"`
	Level      int        `json:"level"`
	Path       string     `json:"path"`
	InsertedAt time.Time  `json:"inserted_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
