package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/interval"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia, compartidos por los tests
// del paquete.

type fakeCategoryRepo struct {
	nextID int
	items  map[int]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{nextID: 1, items: make(map[int]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) ExistsActiveName(name string) (bool, error) {
	for _, c := range r.items {
		if c.Active() && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) MarkDeleted(ids []int, at time.Time) error {
	for _, id := range ids {
		if c, ok := r.items[id]; ok {
			t := at
			c.DeleteYn = entity.DeleteYes
			c.DeletedAt = &t
		}
	}
	return nil
}

func (r *fakeCategoryRepo) ListAll() ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeCategoryRepo) ListTop() ([]*entity.Category, error) {
	return r.filter(func(c *entity.Category) bool {
		return c.Active() && c.Level == entity.LevelTop
	})
}

func (r *fakeCategoryRepo) ListMiddle(topID int) ([]*entity.Category, error) {
	return r.filter(func(c *entity.Category) bool {
		return c.Active() && c.Level == entity.LevelMiddle && c.ParentID != nil && *c.ParentID == topID
	})
}

func (r *fakeCategoryRepo) ListLow(topID, middleID int) ([]*entity.Category, error) {
	return r.filter(func(c *entity.Category) bool {
		if !c.Active() || c.Level != entity.LevelLow || c.ParentID == nil || *c.ParentID != middleID {
			return false
		}
		parent, ok := r.items[middleID]
		return ok && parent.ParentID != nil && *parent.ParentID == topID
	})
}

func (r *fakeCategoryRepo) filter(keep func(*entity.Category) bool) ([]*entity.Category, error) {
	all, _ := r.ListAll()
	var list []*entity.Category
	for _, c := range all {
		if keep(c) {
			list = append(list, c)
		}
	}
	return list, nil
}

type fakeCategoryTx struct {
	repo repository.CategoryRepository
}

func (t *fakeCategoryTx) RunCategory(_ context.Context, fn func(repo repository.CategoryRepository) error) error {
	return fn(t.repo)
}

type fakePriceRepo struct {
	nextID     int
	items      map[int]*entity.Price
	lastFilter repository.PriceFilter
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{nextID: 1, items: make(map[int]*entity.Price)}
}

func (r *fakePriceRepo) Create(p *entity.Price) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePriceRepo) GetByID(id int) (*entity.Price, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePriceRepo) Update(p *entity.Price) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePriceRepo) HardDelete(id int) error {
	delete(r.items, id)
	return nil
}

func (r *fakePriceRepo) FindOverlapping(customerID int, productCode string, start, end interval.Bound) ([]*entity.Price, error) {
	var list []*entity.Price
	all := r.sorted()
	for _, p := range all {
		if p.CustomerID != customerID || p.ProductCode != productCode || !p.Active() {
			continue
		}
		if interval.Overlaps(p.StartDate, p.EndDate, start, end) {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakePriceRepo) ListByCustomerAndProduct(customerID int, productCode string) ([]*entity.Price, error) {
	var list []*entity.Price
	for _, p := range r.sorted() {
		if p.CustomerID == customerID && p.ProductCode == productCode {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakePriceRepo) ListFiltered(filter repository.PriceFilter) ([]*entity.Price, int, error) {
	r.lastFilter = filter
	list := r.sorted()
	return list, len(list), nil
}

func (r *fakePriceRepo) sorted() []*entity.Price {
	list := make([]*entity.Price, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

type fakePriceTx struct {
	repo  repository.PriceRepository
	locks []string
}

func (t *fakePriceTx) RunPriceExclusive(_ context.Context, customerID int, productCode string, fn func(repo repository.PriceRepository) error) error {
	t.locks = append(t.locks, productCode)
	return fn(t.repo)
}

type fakeCustomerRepo struct {
	items map[int]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{items: make(map[int]*entity.Customer)}
	for _, c := range customers {
		r.items[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) GetByID(id int) (*entity.Customer, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	list := make([]*entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{items: make(map[string]*entity.Product)}
	for _, p := range products {
		r.items[p.Code] = p
	}
	return r
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	p, ok := r.items[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}
