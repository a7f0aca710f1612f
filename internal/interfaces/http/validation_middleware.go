package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/veterinaria-api/pkg/password"
)

// LocalCuerpo clave de Locals con el cuerpo ya validado.
const LocalCuerpo = "cuerpo"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores nombran el campo como lo ve el cliente (tag json).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// bcryptmax: tope de bcrypt en bytes; max=72 contaría caracteres.
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= password.MaxBytes
	})
	return v
}

// ValidarCuerpo parsea el body en T y lo valida con las etiquetas `validate`.
// Responde 400 sin llegar al handler si el body no es JSON válido o no cumple.
func ValidarCuerpo[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := new(T)
		if err := c.BodyParser(in); err != nil {
			return respondFail(c, fiber.StatusBadRequest, "cuerpo inválido")
		}
		if err := validate.Struct(in); err != nil {
			return respondFail(c, fiber.StatusBadRequest, formatValidationError(err))
		}
		c.Locals(LocalCuerpo, in)
		return c.Next()
	}
}

// Cuerpo devuelve el body validado por ValidarCuerpo[T]; nil si no pasó por él.
func Cuerpo[T any](c *fiber.Ctx) *T {
	in, _ := c.Locals(LocalCuerpo).(*T)
	return in
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "cuerpo inválido"
	}
	partes := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			partes = append(partes, fmt.Sprintf("%s es requerido", fe.Field()))
		case "min":
			partes = append(partes, fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param()))
		case "max":
			partes = append(partes, fmt.Sprintf("%s excede %s caracteres", fe.Field(), fe.Param()))
		case "bcryptmax":
			partes = append(partes, fmt.Sprintf("%s excede %d bytes", fe.Field(), password.MaxBytes))
		case "email":
			partes = append(partes, fmt.Sprintf("%s no es un email válido", fe.Field()))
		default:
			partes = append(partes, fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(partes, "; ")
}
