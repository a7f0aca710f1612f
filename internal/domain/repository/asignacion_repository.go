package repository

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// RolPermisoRepository tabla de unión rol -> permiso.
type RolPermisoRepository interface {
	Create(ctx context.Context, rp *entity.RolPermiso) error
	GetByID(ctx context.Context, id int64) (*entity.RolPermiso, error)
	Get(ctx context.Context, rolID, permisoID int64) (*entity.RolPermiso, error)
	ListByRol(ctx context.Context, rolID int64) ([]*entity.RolPermiso, error)
	CountByPermiso(ctx context.Context, permisoID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// UsuarioRolRepository tabla de unión usuario -> rol.
type UsuarioRolRepository interface {
	Create(ctx context.Context, ur *entity.UsuarioRol) error
	GetByID(ctx context.Context, id int64) (*entity.UsuarioRol, error)
	Get(ctx context.Context, usuarioID, rolID int64) (*entity.UsuarioRol, error)
	ListByUsuario(ctx context.Context, usuarioID int64) ([]*entity.UsuarioRol, error)
	CountByRol(ctx context.Context, rolID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}
