package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	tx := &fakeTxRunner{products: products, categories: categories}
	return usecase.NewProductUseCase(products, categories, tx), products, categories
}

func iphoneRequest(categoryID *int64) dto.ProductRequest {
	return dto.ProductRequest{
		Name:          "iPhone 15",
		SKU:           "IPHONE-15-BLACK-128",
		Price:         decimal.RequireFromString("49999.90"),
		StockQuantity: ptrInt(10),
		Active:        ptrBool(true),
		CategoryID:    categoryID,
	}
}

// Crear con SKU libre y categoría existente: la vista denormaliza el nombre de la categoría.
func TestProductCreate_SkuUnico(t *testing.T) {
	uc, _, categories := newProductUC()

	electronics, err := usecase.NewCategoryUseCase(categories).Create(dto.CategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	out, err := uc.Create(context.Background(), iphoneRequest(&electronics.ID))
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "iPhone 15", out.Name)
	assert.Equal(t, "IPHONE-15-BLACK-128", out.SKU)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("49999.90")))
	assert.Equal(t, 10, out.StockQuantity)
	assert.True(t, out.Active)
	require.NotNil(t, out.CategoryID)
	assert.Equal(t, electronics.ID, *out.CategoryID)
	require.NotNil(t, out.CategoryName)
	assert.Equal(t, "Electronics", *out.CategoryName)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)
}

// Sin categoría: categoryId y categoryName ausentes en la vista.
func TestProductCreate_SinCategoria(t *testing.T) {
	uc, _, _ := newProductUC()

	out, err := uc.Create(context.Background(), iphoneRequest(nil))
	require.NoError(t, err)

	assert.Nil(t, out.CategoryID)
	assert.Nil(t, out.CategoryName)
}

// SKU ya tomado: error de negocio y ninguna escritura.
func TestProductCreate_SkuDuplicado(t *testing.T) {
	uc, products, _ := newProductUC()

	_, err := uc.Create(context.Background(), iphoneRequest(nil))
	require.NoError(t, err)

	in := iphoneRequest(nil)
	in.Name = "iPhone 15 Pro"
	_, err = uc.Create(context.Background(), in)
	require.Error(t, err)

	assert.Equal(t, domain.KindBusiness, domain.KindOf(err))
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, 1, products.creates, "el segundo create no debe persistir")
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, products, _ := newProductUC()

	_, err := uc.Create(context.Background(), iphoneRequest(ptrInt64(42)))
	require.Error(t, err)

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.EqualError(t, err, "Category not found with id: 42")
	assert.Zero(t, products.creates)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.GetByID(99)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.EqualError(t, err, "Product not found with id: 99")
}

// Round-trip: crear y leer por id devuelve la misma vista.
func TestProductRoundTrip(t *testing.T) {
	uc, _, categories := newProductUC()

	electronics, _ := usecase.NewCategoryUseCase(categories).Create(dto.CategoryRequest{Name: "Electronics"})
	created, err := uc.Create(context.Background(), iphoneRequest(&electronics.ID))
	require.NoError(t, err)

	fetched, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestProductGetAll_ResuelveNombresDeCategoria(t *testing.T) {
	uc, _, categories := newProductUC()

	electronics, _ := usecase.NewCategoryUseCase(categories).Create(dto.CategoryRequest{Name: "Electronics"})

	_, err := uc.Create(context.Background(), iphoneRequest(&electronics.ID))
	require.NoError(t, err)

	other := iphoneRequest(nil)
	other.SKU = "GALAXY-S24-256"
	other.Name = "Galaxy S24"
	_, err = uc.Create(context.Background(), other)
	require.NoError(t, err)

	out, err := uc.GetAll()
	require.NoError(t, err)
	require.Len(t, out, 2)

	byName := map[string]dto.ProductResponse{}
	for _, p := range out {
		byName[p.Name] = p
	}
	require.NotNil(t, byName["iPhone 15"].CategoryName)
	assert.Equal(t, "Electronics", *byName["iPhone 15"].CategoryName)
	assert.Nil(t, byName["Galaxy S24"].CategoryName)
}

// Reenviar el mismo SKU en update es idempotente: ni siquiera consulta la unicidad.
func TestProductUpdate_MismoSkuNoVerificaUnicidad(t *testing.T) {
	uc, products, _ := newProductUC()

	created, err := uc.Create(context.Background(), iphoneRequest(nil))
	require.NoError(t, err)

	checksBefore := products.skuChecks
	in := iphoneRequest(nil)
	in.StockQuantity = ptrInt(5)
	out, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, 5, out.StockQuantity)
	assert.Equal(t, checksBefore, products.skuChecks,
		"con el SKU sin cambios no debe verificarse unicidad")
}

// Cambiar a un SKU ya tomado falla; a uno libre funciona.
func TestProductUpdate_SkuCambiado(t *testing.T) {
	uc, products, _ := newProductUC()

	first, err := uc.Create(context.Background(), iphoneRequest(nil))
	require.NoError(t, err)

	second := iphoneRequest(nil)
	second.SKU = "GALAXY-S24-256"
	secondOut, err := uc.Create(context.Background(), second)
	require.NoError(t, err)

	in := iphoneRequest(nil)
	in.SKU = first.SKU
	_, err = uc.Update(context.Background(), secondOut.ID, in)
	require.Error(t, err)
	assert.Equal(t, domain.KindBusiness, domain.KindOf(err))
	assert.Contains(t, err.Error(), "already exists")
	assert.Zero(t, products.updates)

	in.SKU = "GALAXY-S24-512"
	out, err := uc.Update(context.Background(), secondOut.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "GALAXY-S24-512", out.SKU)
}

// UpdatedAt no decrece y CreatedAt no cambia tras un update.
func TestProductUpdate_RefrescaTimestamp(t *testing.T) {
	uc, _, _ := newProductUC()

	created, err := uc.Create(context.Background(), iphoneRequest(nil))
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, iphoneRequest(nil))
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, out.CreatedAt, "CreatedAt se asigna una sola vez")
	assert.False(t, out.UpdatedAt.Before(created.UpdatedAt), "UpdatedAt no debe decrecer")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc, products, _ := newProductUC()

	_, err := uc.Update(context.Background(), 99, iphoneRequest(nil))
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.EqualError(t, err, "Product not found with id: 99")
	assert.Zero(t, products.updates)
}

func TestProductDelete(t *testing.T) {
	uc, _, _ := newProductUC()

	created, err := uc.Create(context.Background(), iphoneRequest(nil))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc, products, _ := newProductUC()

	err := uc.Delete(99)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Contains(t, err.Error(), "Product not found")
	assert.Zero(t, products.deletes)
}
