package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

// PathSeparator separador de la ruta renderizada ("Superior > Media > Baja").
const PathSeparator = " > "

// maxTreeDepth tope defensivo al recorrer cadenas de padres: el árbol lo
// edita el usuario y el update no valida ciclos ni niveles.
const maxTreeDepth = 32

// CategoryUseCase casos de uso del árbol de categorías: alta con unicidad
// global de nombre, edición, borrado lógico en cascada, reconstrucción de
// rutas y listados por nivel.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   CategoryTxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, tx CategoryTxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx}
}

// Create crea una categoría. Falla con ErrDuplicate si ya existe una
// categoría activa con el mismo nombre en cualquier punto del árbol: la
// unicidad es global, no por padre (comportamiento heredado, ver DESIGN.md).
func (uc *CategoryUseCase) Create(in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Level < entity.LevelTop || in.Level > entity.LevelLow {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.repo.ExistsActiveName(in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		Level:      in.Level,
		ParentID:   in.ParentID,
		Name:       in.Name,
		InsertedAt: time.Now(),
		DeleteYn:   entity.DeleteNo,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id int) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update sobreescribe nombre, nivel y padre, y estampa la fecha de
// actualización. No valida consistencia de nivel ni ciclos en la cadena de
// padres (comportamiento heredado; la cascada y Path se defienden solos).
func (uc *CategoryUseCase) Update(id int, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Level < entity.LevelTop || in.Level > entity.LevelLow {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	category.Name = in.Name
	category.Level = in.Level
	category.ParentID = in.ParentID
	category.UpdatedAt = &now
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete marca la categoría y todo su subárbol como borrados, en una sola
// transacción y con un único timestamp capturado para toda la cascada. Los
// hermanos y ancestros no se tocan. El recorrido carga los nodos una vez,
// arma la adyacencia en memoria y usa una pila explícita con conjunto de
// visitados, por si la cadena de padres está corrupta con un ciclo.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.RunCategory(ctx, func(repo repository.CategoryRepository) error {
		all, err := repo.ListAll()
		if err != nil {
			return err
		}
		byID := make(map[int]*entity.Category, len(all))
		children := make(map[int][]int, len(all))
		for _, c := range all {
			byID[c.ID] = c
			if c.ParentID != nil {
				children[*c.ParentID] = append(children[*c.ParentID], c.ID)
			}
		}
		if _, ok := byID[id]; !ok {
			return domain.ErrNotFound
		}

		visited := make(map[int]bool)
		var ids []int
		stack := []int{id}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			ids = append(ids, cur)
			stack = append(stack, children[cur]...)
		}

		return repo.MarkDeleted(ids, time.Now())
	})
}

// Path reconstruye la ruta desde la raíz hasta la categoría, renderizada con
// PathSeparator. Costo proporcional a la profundidad. Falla con ErrIntegrity
// si detecta un ciclo en la cadena de padres.
func (uc *CategoryUseCase) Path(id int) (string, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if current == nil {
		return "", domain.ErrNotFound
	}

	visited := make(map[int]bool)
	var names []string
	for depth := 0; ; depth++ {
		if visited[current.ID] || depth > maxTreeDepth {
			return "", domain.ErrIntegrity
		}
		visited[current.ID] = true
		names = append([]string{current.Name}, names...)
		if current.ParentID == nil {
			break
		}
		parent, err := uc.repo.GetByID(*current.ParentID)
		if err != nil {
			return "", err
		}
		if parent == nil {
			// Padre colgante: se rinde la ruta parcial disponible.
			break
		}
		current = parent
	}
	return strings.Join(names, PathSeparator), nil
}

// AllPaths devuelve, para cada categoría activa, sus ancestros descompuestos
// por nivel (superior/media/baja), la ruta completa y su propio nivel. Carga
// el árbol una sola vez; asume como máximo tres niveles.
func (uc *CategoryUseCase) AllPaths() ([]dto.CategoryPathResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*entity.Category, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}

	var out []dto.CategoryPathResponse
	for _, c := range all {
		if !c.Active() {
			continue
		}
		chain, ok := ancestorChain(byID, c)
		if !ok {
			// Cadena cíclica: se omite el nodo en vez de romper el listado.
			continue
		}
		item := dto.CategoryPathResponse{
			CategoryID: c.ID,
			Level:      c.Level,
			Path:       renderPath(chain),
			InsertedAt: c.InsertedAt,
			UpdatedAt:  c.UpdatedAt,
		}
		// chain va de la raíz al nodo; las posiciones mapean a los tres niveles.
		if len(chain) > 0 {
			item.TopID = &chain[0].ID
		}
		if len(chain) > 1 {
			item.MiddleID = &chain[1].ID
		}
		if len(chain) > 2 {
			item.LowID = &chain[2].ID
		}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// ListAll lista todas las categorías, incluidas las borradas.
func (uc *CategoryUseCase) ListAll() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// ListTop lista las categorías activas de nivel superior.
func (uc *CategoryUseCase) ListTop() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListTop()
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// ListMiddle lista las categorías medias activas hijas de la superior dada.
func (uc *CategoryUseCase) ListMiddle(topID int) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListMiddle(topID)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// ListLow lista las categorías bajas activas bajo la cadena superior→media.
func (uc *CategoryUseCase) ListLow(topID, middleID int) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListLow(topID, middleID)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// ancestorChain devuelve la cadena raíz→nodo. ok=false si hay un ciclo.
func ancestorChain(byID map[int]*entity.Category, c *entity.Category) ([]*entity.Category, bool) {
	visited := make(map[int]bool)
	var chain []*entity.Category
	current := c
	for depth := 0; ; depth++ {
		if visited[current.ID] || depth > maxTreeDepth {
			return nil, false
		}
		visited[current.ID] = true
		chain = append([]*entity.Category{current}, chain...)
		if current.ParentID == nil {
			break
		}
		parent, ok := byID[*current.ParentID]
		if !ok {
			break
		}
		current = parent
	}
	return chain, true
}

func renderPath(chain []*entity.Category) string {
	names := make([]string, 0, len(chain))
	for _, c := range chain {
		names = append(names, c.Name)
	}
	return strings.Join(names, PathSeparator)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:         c.ID,
		Level:      c.Level,
		ParentID:   c.ParentID,
		Name:       c.Name,
		InsertedAt: c.InsertedAt,
		UpdatedAt:  c.UpdatedAt,
		DeleteYn:   c.DeleteYn,
		DeletedAt:  c.DeletedAt,
	}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items
}
