package dto

// CategoryRequest entrada para crear o actualizar una categoría (reemplazo completo).
type CategoryRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	ParentID *int64 `json:"parentId"`
}

// CategoryResponse vista externa de una categoría.
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentId,omitempty"`
}
