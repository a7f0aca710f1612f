package entity

import "time"

// Credencial datos de login de un Usuario (relación 1-1 por UsuarioID).
type Credencial struct {
	ID         int64
	UsuarioID  int64
	Usuario    string // handle de login, único
	Contrasena string // hash bcrypt; nunca texto plano después de persistir
	Activo     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
