package dto

import "time"

// ErrorResponse cuerpo de error HTTP uniforme para toda respuesta no-2xx.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`   // "Not Found", "Business Error", "Internal Server Error"
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}
