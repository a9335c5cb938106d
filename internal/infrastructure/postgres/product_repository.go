package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo acceso de solo lectura al catálogo de productos (m_product).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByCode obtiene un producto activo por código.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `
		SELECT product_cd, product_nm, category_no, product_price, product_insert_date, product_delete_yn
		FROM m_product WHERE product_cd = $1 AND product_delete_yn = 'N'`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&p.Code, &p.Name, &p.CategoryID, &p.ListPrice, &p.InsertedAt, &p.DeleteYn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos activos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT product_cd, product_nm, category_no, product_price, product_insert_date, product_delete_yn
		FROM m_product WHERE product_delete_yn = 'N' ORDER BY product_nm LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.CategoryID, &p.ListPrice, &p.InsertedAt, &p.DeleteYn); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
