package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// NewErrorHandler traduce errores de dominio al cuerpo de error uniforme
// {status, error, message, path, timestamp}. Todo lo no clasificado responde
// 500 con mensaje genérico; el detalle real solo se loggea.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		label := "Internal Server Error"
		message := "Unexpected error occurred"

		switch domain.KindOf(err) {
		case domain.KindNotFound:
			status, label, message = fiber.StatusNotFound, "Not Found", err.Error()
		case domain.KindBusiness:
			status, label, message = fiber.StatusBadRequest, "Business Error", err.Error()
		default:
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				// Errores del framework: solo la ruta inexistente es "Not Found";
				// el resto (método no permitido, body inválido) es error de negocio.
				if fe.Code == fiber.StatusNotFound {
					status, label, message = fiber.StatusNotFound, "Not Found", fe.Message
				} else {
					status, label, message = fiber.StatusBadRequest, "Business Error", fe.Message
				}
			} else {
				log.Error().Err(err).
					Str("method", c.Method()).
					Str("path", c.Path()).
					Msg("error no controlado")
			}
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Status:    status,
			Error:     label,
			Message:   message,
			Path:      c.Path(),
			Timestamp: time.Now(),
		})
	}
}
