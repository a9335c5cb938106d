package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo acceso de solo lectura al directorio de clientes (m_customer).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByID obtiene un cliente activo por ID.
func (r *CustomerRepo) GetByID(id int) (*entity.Customer, error) {
	query := `
		SELECT customer_no, customer_nm, customer_representative_nm, customer_tel, customer_insert_date, customer_delete_yn
		FROM m_customer WHERE customer_no = $1 AND customer_delete_yn = 'N'`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.RepresentativeName, &c.Tel, &c.InsertedAt, &c.DeleteYn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes activos con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT customer_no, customer_nm, customer_representative_nm, customer_tel, customer_insert_date, customer_delete_yn
		FROM m_customer WHERE customer_delete_yn = 'N' ORDER BY customer_nm LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.RepresentativeName, &c.Tel, &c.InsertedAt, &c.DeleteYn); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
