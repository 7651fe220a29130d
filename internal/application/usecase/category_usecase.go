package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías del catálogo.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Si viene parentId, el padre debe existir.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.resolveParent(in.ParentID); err != nil {
		return nil, err
	}
	category := &entity.Category{
		Name:     in.Name,
		ParentID: in.ParentID,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("Category not found")
	}
	return toCategoryResponse(category), nil
}

// GetAll devuelve todas las categorías (orden determinado por la base).
func (uc *CategoryUseCase) GetAll() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update aplica el nuevo nombre siempre; el padre se re-resuelve si viene,
// o se limpia si se omite.
func (uc *CategoryUseCase) Update(id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("Category not found")
	}
	if err := uc.resolveParent(in.ParentID); err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.ParentID = in.ParentID
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría si existe. El esquema restringe el borrado de
// categorías que aún tienen hijos o productos.
func (uc *CategoryUseCase) Delete(id int64) error {
	exists, err := uc.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound("Category not found")
	}
	return uc.repo.Delete(id)
}

func (uc *CategoryUseCase) resolveParent(parentID *int64) error {
	if parentID == nil {
		return nil
	}
	exists, err := uc.repo.ExistsByID(*parentID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound("Parent category not found")
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
	}
}
