package entity

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Usuario datos de identidad de una persona registrada en la clínica.
type Usuario struct {
	ID              int64
	TipoDocumento   string
	NumeroDocumento string
	Nombre          string
	Telefono        string
	Direccion       string
	Email           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizarUsuario deja el handle de login en forma canónica (NFC, sin espacios en los extremos)
// para que "José" compuesto y descompuesto resuelvan a la misma credencial.
func NormalizarUsuario(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
