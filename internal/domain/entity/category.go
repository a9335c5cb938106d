package entity

import "time"

// Valores del flag de borrado lógico (columnas *_delete_yn).
const (
	DeleteNo  = "N"
	DeleteYes = "Y"
)

// Niveles del árbol de categorías.
const (
	LevelTop    = 1
	LevelMiddle = 2
	LevelLow    = 3
)

// Category nodo del árbol de categorías de productos. El árbol es
// autorreferencial vía ParentID (nil solo en el nivel superior) y se maneja
// con borrado lógico en cascada: nunca se eliminan filas.
type Category struct {
	ID         int
	Level      int // 1 = superior, 2 = media, 3 = inferior
	ParentID   *int
	Name       string
	InsertedAt time.Time
	UpdatedAt  *time.Time
	DeleteYn   string // "N" activa, "Y" borrada
	DeletedAt  *time.Time
}

// Active indica si la categoría no está marcada como borrada.
func (c *Category) Active() bool {
	return c.DeleteYn != DeleteYes
}
