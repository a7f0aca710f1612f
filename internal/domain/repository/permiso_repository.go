package repository

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// PermisoRepository puerto de persistencia para el catálogo de permisos.
type PermisoRepository interface {
	Create(ctx context.Context, p *entity.Permiso) error
	GetByID(ctx context.Context, id int64) (*entity.Permiso, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Permiso, error)
	Update(ctx context.Context, p *entity.Permiso) error
	List(ctx context.Context) ([]*entity.Permiso, error)
	Delete(ctx context.Context, id int64) error
}
