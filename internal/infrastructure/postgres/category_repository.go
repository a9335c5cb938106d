package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `category_no, category_level, parent_category_no, category_nm,
	category_insert_date, category_update_date, category_delete_yn, category_delete_date`

// CategoryRepo implementación de CategoryRepository sobre m_category (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría y asigna el ID generado.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO m_category (category_level, parent_category_no, category_nm, category_insert_date, category_delete_yn)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING category_no`
	err := r.q.QueryRow(context.Background(), query,
		category.Level, category.ParentID, category.Name, category.InsertedAt, category.DeleteYn,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id int) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM m_category WHERE category_no = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// ExistsActiveName verifica si hay una categoría activa con ese nombre en
// cualquier punto del árbol.
func (r *CategoryRepo) ExistsActiveName(name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM m_category WHERE category_nm = $1 AND category_delete_yn = 'N')`,
		name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category name: %w", err)
	}
	return exists, nil
}

// Update sobreescribe nombre, nivel, padre y fecha de actualización.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE m_category
		SET category_level = $2, parent_category_no = $3, category_nm = $4, category_update_date = $5
		WHERE category_no = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Level, category.ParentID, category.Name, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// MarkDeleted marca el conjunto de nodos como borrados con el timestamp
// capturado para toda la cascada.
func (r *CategoryRepo) MarkDeleted(ids []int, at time.Time) error {
	query := `
		UPDATE m_category
		SET category_delete_yn = 'Y', category_delete_date = $2
		WHERE category_no = ANY($1)`
	_, err := r.q.Exec(context.Background(), query, ids, at)
	if err != nil {
		return fmt.Errorf("mark categories deleted: %w", err)
	}
	return nil
}

// ListAll lista todas las categorías, incluidas las borradas.
func (r *CategoryRepo) ListAll() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM m_category ORDER BY category_no`
	return r.list(query)
}

// ListTop lista las categorías activas de nivel superior.
func (r *CategoryRepo) ListTop() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM m_category
		WHERE category_level = 1 AND category_delete_yn = 'N'
		ORDER BY category_nm`
	return r.list(query)
}

// ListMiddle lista las categorías medias activas hijas de la superior dada.
func (r *CategoryRepo) ListMiddle(topID int) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM m_category
		WHERE category_level = 2 AND category_delete_yn = 'N' AND parent_category_no = $1
		ORDER BY category_nm`
	return r.list(query, topID)
}

// ListLow lista las categorías bajas activas cuya madre es la media dada y
// cuya abuela es la superior dada (la cadena completa desambigua).
func (r *CategoryRepo) ListLow(topID, middleID int) ([]*entity.Category, error) {
	query := `SELECT c.category_no, c.category_level, c.parent_category_no, c.category_nm,
			c.category_insert_date, c.category_update_date, c.category_delete_yn, c.category_delete_date
		FROM m_category c
		JOIN m_category m ON m.category_no = c.parent_category_no
		WHERE c.category_level = 3 AND c.category_delete_yn = 'N'
			AND c.parent_category_no = $2 AND m.parent_category_no = $1
		ORDER BY c.category_nm`
	return r.list(query, topID, middleID)
}

func (r *CategoryRepo) list(query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, category)
	}
	return list, rows.Err()
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(
		&c.ID, &c.Level, &c.ParentID, &c.Name,
		&c.InsertedAt, &c.UpdatedAt, &c.DeleteYn, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
