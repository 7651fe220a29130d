package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores de dominio; la capa HTTP traduce cada Kind a un status code.
type Kind int

const (
	KindNotFound Kind = iota + 1 // el recurso referenciado no existe -> 404
	KindBusiness                 // regla de negocio violada -> 400
)

// Error error de dominio con categoría explícita y mensaje apto para el cliente.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound construye un error de recurso no encontrado.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Business construye un error de regla de negocio.
func Business(format string, args ...any) *Error {
	return &Error{Kind: KindBusiness, Message: fmt.Sprintf(format, args...)}
}

// KindOf devuelve el Kind del error, o 0 si no es un error de dominio.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
