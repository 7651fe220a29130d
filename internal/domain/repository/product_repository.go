package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	Create(product *entity.Product) error // asigna product.ID
	GetByID(id int64) (*entity.Product, error)
	ExistsByID(id int64) (bool, error)
	ExistsBySKU(sku string) (bool, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
