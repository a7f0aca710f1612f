package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/pkg/password"
)

const msgInterno = "error interno del servidor"

// respondOK cuerpo uniforme de éxito.
func respondOK(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Response{
		Error:   false,
		Code:    status,
		Message: message,
		Data:    data,
	})
}

// respondFail cuerpo uniforme de error con un status explícito.
func respondFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    status,
		Message: message,
	})
}

// statusFor traduce un error de dominio a status HTTP. 0 = inesperado.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotRegistered),
		errors.Is(err, domain.ErrAccountDisabled),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrHasDependents):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrReservedRole):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, password.ErrTooLong):
		return fiber.StatusBadRequest
	}
	return 0
}

// respondError único punto de traducción error -> HTTP. Los errores inesperados se
// registran con detalle y al cliente solo llega un mensaje genérico.
func respondError(c *fiber.Ctx, err error) error {
	if status := statusFor(err); status != 0 {
		return respondFail(c, status, err.Error())
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error no controlado")
	return respondFail(c, fiber.StatusInternalServerError, msgInterno)
}

// ErrorHandler para fiber.Config: errores de fiber (404 de ruta, 405, body grande) y
// panics recuperados salen con la misma forma que el resto.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error de fiber")
			return respondFail(c, fe.Code, msgInterno)
		}
		return respondFail(c, fe.Code, fe.Message)
	}
	return respondError(c, err)
}

// paramID lee un parámetro de ruta como id positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s inválido", domain.ErrInvalidInput, name)
	}
	return id, nil
}
