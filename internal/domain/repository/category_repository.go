package repository

import (
	"time"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para el árbol de
// categorías (DIP). Path y la cascada de borrado se calculan en el caso de
// uso sobre los nodos cargados, no en SQL.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int) (*entity.Category, error)
	// ExistsActiveName verifica si existe una categoría activa con ese nombre
	// en cualquier punto del árbol (la unicidad es global, no por padre).
	ExistsActiveName(name string) (bool, error)
	Update(category *entity.Category) error
	// MarkDeleted marca el conjunto de nodos como borrados con un único
	// timestamp capturado para toda la cascada.
	MarkDeleted(ids []int, at time.Time) error
	ListAll() ([]*entity.Category, error)
	ListTop() ([]*entity.Category, error)
	ListMiddle(topID int) ([]*entity.Category, error)
	ListLow(topID, middleID int) ([]*entity.Category, error)
}
