package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Las escrituras corren dentro
// de una transacción para que la verificación de SKU y el insert/update sean
// atómicos; el constraint único de la base sigue siendo la guarda final.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tx         TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, tx: tx}
}

// Create crea un producto con SKU único global y categoría opcional.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		taken, err := products.ExistsBySKU(in.SKU)
		if err != nil {
			return err
		}
		if taken {
			return domain.Business("Product with SKU '%s' already exists", in.SKU)
		}
		category, err := resolveCategory(categories, in.CategoryID)
		if err != nil {
			return err
		}
		now := time.Now()
		product := &entity.Product{
			Name:          in.Name,
			SKU:           in.SKU,
			Price:         in.Price,
			StockQuantity: *in.StockQuantity,
			Active:        *in.Active,
			CategoryID:    in.CategoryID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := products.Create(product); err != nil {
			return err
		}
		out = toProductResponse(product, category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un producto por ID, resolviendo la categoría en un segundo fetch.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Product not found with id: %d", id)
	}
	var category *entity.Category
	if product.CategoryID != nil {
		category, err = uc.categories.GetByID(*product.CategoryID)
		if err != nil {
			return nil, err
		}
	}
	return toProductResponse(product, category), nil
}

// GetAll devuelve todos los productos; los nombres de categoría se resuelven
// con una sola lectura del listado de categorías.
func (uc *ProductUseCase) GetAll() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	names := map[int64]string{}
	if len(list) > 0 {
		categories, err := uc.categories.List()
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			names[c.ID] = c.Name
		}
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		var category *entity.Category
		if p.CategoryID != nil {
			if name, ok := names[*p.CategoryID]; ok {
				category = &entity.Category{ID: *p.CategoryID, Name: name}
			}
		}
		items = append(items, *toProductResponse(p, category))
	}
	return items, nil
}

// Update reemplaza todos los campos mutables. La unicidad de SKU solo se
// re-verifica cuando el SKU cambió; reenviar el mismo SKU es idempotente.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("Product not found with id: %d", id)
		}
		if product.SKU != in.SKU {
			taken, err := products.ExistsBySKU(in.SKU)
			if err != nil {
				return err
			}
			if taken {
				return domain.Business("Product with SKU '%s' already exists", in.SKU)
			}
		}
		category, err := resolveCategory(categories, in.CategoryID)
		if err != nil {
			return err
		}
		product.Name = in.Name
		product.SKU = in.SKU
		product.Price = in.Price
		product.StockQuantity = *in.StockQuantity
		product.Active = *in.Active
		product.CategoryID = in.CategoryID
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product, category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el producto si existe.
func (uc *ProductUseCase) Delete(id int64) error {
	exists, err := uc.products.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound("Product not found with id: %d", id)
	}
	return uc.products.Delete(id)
}

// resolveCategory devuelve la categoría referenciada, nil si no hay referencia.
func resolveCategory(categories repository.CategoryRepository, id *int64) (*entity.Category, error) {
	if id == nil {
		return nil, nil
	}
	category, err := categories.GetByID(*id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("Category not found with id: %d", *id)
	}
	return category, nil
}

func toProductResponse(p *entity.Product, category *entity.Category) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Active:        p.Active,
		CategoryID:    p.CategoryID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if category != nil {
		resp.CategoryName = &category.Name
	}
	return resp
}
