package dto

import "time"

// LoginRequest credenciales de login.
type LoginRequest struct {
	Usuario    string `json:"usuario" validate:"required,max=60"`
	Contrasena string `json:"contrasena" validate:"required,bcryptmax"`
}

// RolResumen rol dentro del perfil de sesión.
type RolResumen struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// UsuarioCookie perfil desnormalizado para el cliente. No incluye el hash de la contraseña.
type UsuarioCookie struct {
	Usuario    UsuarioResponse    `json:"usuario"`
	Credencial CredencialResponse `json:"credencial"`
	Roles      []RolResumen       `json:"roles"`
	Permisos   []string           `json:"permisos"`
}

// LoginResponse tokens más perfil.
type LoginResponse struct {
	Token         string        `json:"token"`
	RefreshToken  string        `json:"refreshToken"`
	UsuarioCookie UsuarioCookie `json:"usuarioCookie"`
}

// RefreshRequest el refresh token puede venir en el body o en la cookie refreshToken.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse RefreshToken es null cuando el actual sigue vigente por encima del umbral.
type RefreshResponse struct {
	Token        string  `json:"token"`
	RefreshToken *string `json:"refreshToken"`
}

// LogoutRequest datos de los tokens que se cierran (no viene del body).
// Refresh* vacíos si el cliente no presentó un refresh token válido.
type LogoutRequest struct {
	JTI              string    `json:"-"`
	ExpiresAt        time.Time `json:"-"`
	RefreshJTI       string    `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
}

// RegisterRequest alta pública: datos de identidad más credencial.
type RegisterRequest struct {
	TipoDocumento   string  `json:"tipo_documento" validate:"required,max=20"`
	NumeroDocumento string  `json:"numero_documento" validate:"required,max=30"`
	Nombre          string  `json:"nombre" validate:"required,max=150"`
	Telefono        string  `json:"telefono" validate:"omitempty,max=30"`
	Direccion       string  `json:"direccion" validate:"omitempty,max=200"`
	Email           *string `json:"email" validate:"omitempty,email,max=150"`
	Usuario         string  `json:"usuario" validate:"required,min=3,max=60"`
	Contrasena      string  `json:"contrasena" validate:"required,min=8,bcryptmax"`
}

// RegisterResponse usuario creado con su credencial (sin hash).
type RegisterResponse struct {
	Usuario    UsuarioResponse    `json:"usuario"`
	Credencial CredencialResponse `json:"credencial"`
}

// ChangePasswordRequest cambio de la propia contraseña.
type ChangePasswordRequest struct {
	ContrasenaActual string `json:"contrasena_actual" validate:"required,bcryptmax"`
	ContrasenaNueva  string `json:"contrasena_nueva" validate:"required,min=8,bcryptmax"`
}
