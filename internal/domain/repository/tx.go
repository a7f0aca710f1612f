package repository

import "context"

// Repos conjunto de repositorios atados a una misma transacción.
type Repos struct {
	Usuarios     UsuarioRepository
	Credenciales CredencialRepository
	Roles        RolRepository
	Permisos     PermisoRepository
	RolPermisos  RolPermisoRepository
	UsuarioRoles UsuarioRolRepository
}

// TxRunner ejecuta fn dentro de una transacción; si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
