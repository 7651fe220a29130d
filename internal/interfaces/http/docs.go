package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// RegisterDocs monta el Swagger UI si el archivo de documentación generado
// existe. Si falta (p. ej. un build sin docs), la API arranca igual y /docs
// queda deshabilitado; el middleware entraría en pánico con el archivo ausente.
func RegisterDocs(app *fiber.App, log *logger.Logger, filePath, title string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado; /docs deshabilitado")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
}
