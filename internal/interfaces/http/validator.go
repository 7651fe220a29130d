package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/shopspring/decimal"
)

// validate instancia única de go-playground/validator para los DTOs de entrada.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Reportar errores con el nombre JSON del campo, no el del struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank: requerido y no solo espacios (equivalente a NotBlank).
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// validateStruct corre las validaciones de forma sobre el DTO antes de invocar
// el caso de uso. La primera falla se reporta como error de negocio (400).
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.Business("Validation failed for field '%s' on rule '%s'", fe.Field(), fe.Tag())
	}
	return domain.Business("Validation failed")
}

// priceLimit 10^8: el precio admite como máximo 8 dígitos enteros.
var priceLimit = decimal.New(1, 8)

// validatePrice reglas del precio: requerido, positivo, máx 8 dígitos enteros y 2 decimales.
// Va aparte porque validator no opera sobre decimal.Decimal.
func validatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return domain.Business("Validation failed for field 'price': must be present and positive")
	}
	if price.Exponent() < -2 {
		return domain.Business("Validation failed for field 'price': at most 2 decimal places allowed")
	}
	if price.GreaterThanOrEqual(priceLimit) {
		return domain.Business("Validation failed for field 'price': at most 8 integer digits allowed")
	}
	return nil
}
