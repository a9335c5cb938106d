package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/interval"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

const priceColumns = `p.price_no, p.customer_no, p.product_cd, p.price_customer,
	p.price_start_date, p.price_end_date, p.price_insert_date, p.price_update_date,
	p.price_delete_yn, p.price_delete_date`

// translate() cubre los diacríticos del español para que el texto libre ya
// normalizado en la aplicación compare igual contra las columnas.
const unaccent = `translate(lower(%s), 'áàäâéèëêíìïîóòöôúùüûñ', 'aaaaeeeeiiiioooouuuun')`

// PriceRepo implementación de PriceRepository sobre m_price (usable con pool o tx).
type PriceRepo struct {
	q Querier
}

// NewPriceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

// Create persiste una nueva ventana de tarifa y asigna el ID generado.
func (r *PriceRepo) Create(price *entity.Price) error {
	query := `
		INSERT INTO m_price (customer_no, product_cd, price_customer, price_start_date, price_end_date,
			price_insert_date, price_delete_yn)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING price_no`
	err := r.q.QueryRow(context.Background(), query,
		price.CustomerID, price.ProductCode, price.Amount,
		price.StartDate.Ptr(), price.EndDate.Ptr(),
		price.InsertedAt, price.DeleteYn,
	).Scan(&price.ID)
	if err != nil {
		return fmt.Errorf("insert price: %w", err)
	}
	return nil
}

// GetByID obtiene una ventana por ID, borrada o no.
func (r *PriceRepo) GetByID(id int) (*entity.Price, error) {
	query := `SELECT ` + priceColumns + ` FROM m_price p WHERE p.price_no = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	price, err := scanPrice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price: %w", err)
	}
	return price, nil
}

// Update sobreescribe los campos mutables, incluido el estado de borrado.
func (r *PriceRepo) Update(price *entity.Price) error {
	query := `
		UPDATE m_price
		SET customer_no = $2, product_cd = $3, price_customer = $4,
			price_start_date = $5, price_end_date = $6, price_update_date = $7,
			price_delete_yn = $8, price_delete_date = $9
		WHERE price_no = $1`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, price.CustomerID, price.ProductCode, price.Amount,
		price.StartDate.Ptr(), price.EndDate.Ptr(), price.UpdatedAt,
		price.DeleteYn, price.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("update price: %w", err)
	}
	return nil
}

// HardDelete elimina la fila de forma permanente.
func (r *PriceRepo) HardDelete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM m_price WHERE price_no = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete price: %w", err)
	}
	return nil
}

// FindOverlapping devuelve las ventanas activas del par cuyo intervalo
// intersecta el candidato: s1 ≤ e2 AND s2 ≤ e1, con NULL como −∞ para inicios
// y +∞ para fines, inclusivo en ambos extremos.
func (r *PriceRepo) FindOverlapping(customerID int, productCode string, start, end interval.Bound) ([]*entity.Price, error) {
	query := `SELECT ` + priceColumns + `
		FROM m_price p
		WHERE p.customer_no = $1 AND p.product_cd = $2 AND p.price_delete_yn = 'N'
			AND (p.price_start_date IS NULL OR $4::date IS NULL OR p.price_start_date <= $4)
			AND ($3::date IS NULL OR p.price_end_date IS NULL OR p.price_end_date >= $3)
		ORDER BY p.price_start_date NULLS FIRST, p.price_no`
	return r.list(query, customerID, productCode, start.Ptr(), end.Ptr())
}

// ListByCustomerAndProduct devuelve el historial del par ignorando el flag de
// borrado.
func (r *PriceRepo) ListByCustomerAndProduct(customerID int, productCode string) ([]*entity.Price, error) {
	query := `SELECT ` + priceColumns + `
		FROM m_price p
		WHERE p.customer_no = $1 AND p.product_cd = $2
		ORDER BY p.price_start_date NULLS FIRST, p.price_no`
	return r.list(query, customerID, productCode)
}

// Columnas lógicas de ordenamiento permitidas. Todo lo que no esté aquí cae
// al orden por defecto (price_no).
var priceSortColumns = map[string]string{
	"id":            "p.price_no",
	"amount":        "p.price_customer",
	"start_date":    "p.price_start_date",
	"end_date":      "p.price_end_date",
	"inserted_at":   "p.price_insert_date",
	"customer_name": "c.customer_nm",
	"product_name":  "pr.product_nm",
}

// ListFiltered arma el WHERE según los filtros presentes, cuenta el total y
// devuelve la página pedida. Los joins a cliente y producto sirven para los
// filtros de texto y el ordenamiento por nombre.
func (r *PriceRepo) ListFiltered(filter repository.PriceFilter) ([]*entity.Price, int, error) {
	base := `
		FROM m_price p
		JOIN m_customer c ON c.customer_no = p.customer_no
		JOIN m_product pr ON pr.product_cd = p.product_cd
		WHERE 1=1`
	var args []any
	pos := 1
	addArg := func(clause string, value any) {
		base += fmt.Sprintf(clause, pos)
		args = append(args, value)
		pos++
	}

	if filter.CustomerID != nil {
		addArg(" AND p.customer_no = $%d", *filter.CustomerID)
	}
	if filter.ProductCode != nil {
		addArg(" AND p.product_cd = $%d", *filter.ProductCode)
	}
	if filter.StartDate != nil {
		addArg(" AND p.price_start_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addArg(" AND p.price_end_date <= $%d", *filter.EndDate)
	}
	if filter.TargetDate != nil {
		base += fmt.Sprintf(
			" AND (p.price_start_date IS NULL OR p.price_start_date <= $%d) AND (p.price_end_date IS NULL OR p.price_end_date >= $%d)",
			pos, pos,
		)
		args = append(args, *filter.TargetDate)
		pos++
	}
	if filter.CustomerText != "" {
		addArg(" AND "+fmt.Sprintf(unaccent, "c.customer_nm")+" LIKE '%%' || $%d || '%%'", filter.CustomerText)
	}
	if filter.ProductText != "" {
		base += fmt.Sprintf(
			" AND ("+fmt.Sprintf(unaccent, "pr.product_nm")+" LIKE '%%' || $%d || '%%' OR lower(pr.product_cd) LIKE '%%' || $%d || '%%')",
			pos, pos,
		)
		args = append(args, filter.ProductText)
		pos++
	}
	switch filter.Status {
	case "active":
		base += " AND p.price_delete_yn = 'N'"
	case "deleted":
		base += " AND p.price_delete_yn = 'Y'"
	}

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*)"+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count prices: %w", err)
	}

	sortCol, ok := priceSortColumns[filter.SortBy]
	if !ok {
		sortCol = "p.price_no"
	}
	dir := "ASC"
	if filter.SortDir == "desc" {
		dir = "DESC"
	}
	query := "SELECT " + priceColumns + base +
		fmt.Sprintf(" ORDER BY %s %s, p.price_no LIMIT $%d OFFSET $%d", sortCol, dir, pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	list, err := r.list(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *PriceRepo) list(query string, args ...any) ([]*entity.Price, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Price
	for rows.Next() {
		price, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		list = append(list, price)
	}
	return list, rows.Err()
}

func scanPrice(row pgx.Row) (*entity.Price, error) {
	var p entity.Price
	var start, end *time.Time
	err := row.Scan(
		&p.ID, &p.CustomerID, &p.ProductCode, &p.Amount,
		&start, &end, &p.InsertedAt, &p.UpdatedAt,
		&p.DeleteYn, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	p.StartDate = interval.FromPtr(start)
	p.EndDate = interval.FromPtr(end)
	return &p, nil
}
