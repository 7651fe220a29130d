package entity

// Category categoría del catálogo, con jerarquía opcional vía ParentID.
// El padre se guarda como id, no como referencia viva; no hay detección de ciclos.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64 // nil si es raíz
}
