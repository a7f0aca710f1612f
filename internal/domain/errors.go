package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrNotRegistered   = errors.New("el usuario no está registrado")
	ErrInvalidPassword = errors.New("contraseña incorrecta")
	ErrAccountDisabled = errors.New("la cuenta está deshabilitada")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrHasDependents   = errors.New("el recurso tiene registros dependientes")
	ErrReservedRole    = errors.New("el rol superadmin no puede modificarse")
)
