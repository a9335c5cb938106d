package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrIntegrity    = errors.New("referencia obligatoria ausente o jerarquía corrupta")
	ErrUnauthorized = errors.New("no autorizado")
)
