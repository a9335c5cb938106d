package usecase

import (
	"context"

	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

// CategoryTxRunner ejecuta fn con un repositorio de categorías atado a una
// transacción. La cascada de borrado del subárbol es todo-o-nada: si fn
// falla, ningún nodo queda marcado.
type CategoryTxRunner interface {
	RunCategory(ctx context.Context, fn func(repo repository.CategoryRepository) error) error
}

// PriceTxRunner ejecuta fn con un repositorio de tarifas atado a una
// transacción, serializada por un lock consultivo sobre el par (cliente,
// producto). Cierra la carrera check-then-act entre la verificación de
// solapamiento y la escritura.
type PriceTxRunner interface {
	RunPriceExclusive(ctx context.Context, customerID int, productCode string, fn func(repo repository.PriceRepository) error) error
}
