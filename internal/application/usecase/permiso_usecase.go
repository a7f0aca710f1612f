package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

// PermisoUseCase catálogo de permisos.
type PermisoUseCase struct {
	repo        repository.PermisoRepository
	rolPermisos repository.RolPermisoRepository
	cache       PermisosInvalidator
}

func NewPermisoUseCase(repo repository.PermisoRepository, rolPermisos repository.RolPermisoRepository, cache PermisosInvalidator) *PermisoUseCase {
	return &PermisoUseCase{repo: repo, rolPermisos: rolPermisos, cache: cache}
}

func (uc *PermisoUseCase) List(ctx context.Context) ([]dto.PermisoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermisoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewPermisoResponse(p))
	}
	return out, nil
}

func (uc *PermisoUseCase) GetByID(ctx context.Context, id int64) (*dto.PermisoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewPermisoResponse(p)
	return &resp, nil
}

func (uc *PermisoUseCase) Create(ctx context.Context, in dto.PermisoRequest) (*dto.PermisoResponse, error) {
	if !entity.NombrePermisoValido(in.Nombre) {
		return nil, fmt.Errorf("%w: el permiso debe tener la forma entidad.accion", domain.ErrInvalidInput)
	}
	existente, err := uc.repo.GetByNombre(ctx, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	p := &entity.Permiso{Nombre: in.Nombre, Descripcion: in.Descripcion}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.NewPermisoResponse(p)
	return &resp, nil
}

// Update renombrar un permiso cambia lo que resuelven los usuarios: se purga la caché.
func (uc *PermisoUseCase) Update(ctx context.Context, id int64, in dto.PermisoRequest) (*dto.PermisoResponse, error) {
	if !entity.NombrePermisoValido(in.Nombre) {
		return nil, fmt.Errorf("%w: el permiso debe tener la forma entidad.accion", domain.ErrInvalidInput)
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != p.Nombre {
		otro, err := uc.repo.GetByNombre(ctx, in.Nombre)
		if err != nil {
			return nil, err
		}
		if otro != nil {
			return nil, domain.ErrDuplicate
		}
	}
	p.Nombre = in.Nombre
	p.Descripcion = in.Descripcion
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.InvalidateAll()
	}
	resp := dto.NewPermisoResponse(p)
	return &resp, nil
}

// Delete bloqueado mientras algún rol tenga el permiso.
func (uc *PermisoUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.rolPermisos.CountByPermiso(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if uc.cache != nil {
		uc.cache.InvalidateAll()
	}
	return nil
}
