package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Comercial-api/internal/application/usecase"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

// Ensure TxRunner implementa los runners de los casos de uso.
var _ usecase.CategoryTxRunner = (*TxRunner)(nil)
var _ usecase.PriceTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCategory inicia una transacción, ejecuta fn con un repo de categorías
// atado a la tx y hace Commit o Rollback. La cascada de borrado del subárbol
// corre completa aquí dentro: un fallo a medio camino no deja el árbol
// parcialmente borrado.
func (r *TxRunner) RunCategory(ctx context.Context, fn func(repo repository.CategoryRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCategoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPriceExclusive inicia una transacción y toma un lock consultivo de
// transacción sobre el par (cliente, producto) antes de ejecutar fn. Dos
// llamadas concurrentes sobre el mismo par se serializan, así la verificación
// de solapamiento y la escritura posterior son atómicas entre sí.
func (r *TxRunner) RunPriceExclusive(ctx context.Context, customerID int, productCode string, fn func(repo repository.PriceRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	lockKey := fmt.Sprintf("m_price:%d:%s", customerID, productCode)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, lockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	if err := fn(NewPriceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
