package usecase_test

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Llevan contadores de
// escrituras para poder afirmar que una operación fallida no tocó el store.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	byID    map[int64]*entity.Category
	nextID  int64
	creates int
	updates int
	deletes int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[int64]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.byID[c.ID] = &cp
	r.creates++
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) ExistsByID(id int64) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.byID {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.byID[c.ID] = &cp
	r.updates++
	return nil
}

func (r *fakeCategoryRepo) Delete(id int64) error {
	delete(r.byID, id)
	r.deletes++
	return nil
}

type fakeProductRepo struct {
	byID      map[int64]*entity.Product
	nextID    int64
	creates   int
	updates   int
	deletes   int
	skuChecks int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[int64]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.byID[p.ID] = &cp
	r.creates++
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ExistsByID(id int64) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeProductRepo) ExistsBySKU(sku string) (bool, error) {
	r.skuChecks++
	for _, p := range r.byID {
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.byID {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	r.updates++
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.byID, id)
	r.deletes++
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	products   *fakeProductRepo
	categories *fakeCategoryRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
) error) error {
	return fn(r.products, r.categories)
}

func ptrInt64(v int64) *int64 { return &v }
func ptrInt(v int) *int       { return &v }
func ptrBool(v bool) *bool    { return &v }
