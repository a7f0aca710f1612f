package usecase

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

// UsuarioUseCase aplica reglas de negocio para usuarios.
type UsuarioUseCase struct {
	repo         repository.UsuarioRepository
	usuarioRoles repository.UsuarioRolRepository
}

// NewUsuarioUseCase construye el caso de uso con los puertos de persistencia.
func NewUsuarioUseCase(repo repository.UsuarioRepository, usuarioRoles repository.UsuarioRolRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, usuarioRoles: usuarioRoles}
}

func (uc *UsuarioUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UsuarioListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UsuarioListResponse{
		Items: make([]dto.UsuarioResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, u := range list {
		out.Items = append(out.Items, dto.NewUsuarioResponse(u))
	}
	return out, nil
}

// GetByID devuelve ErrNotFound si el usuario no existe.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewUsuarioResponse(u)
	return &resp, nil
}

// Update reemplaza los datos de identidad; el documento sigue siendo único.
func (uc *UsuarioUseCase) Update(ctx context.Context, id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.NumeroDocumento != u.NumeroDocumento {
		otro, err := uc.repo.GetByDocumento(ctx, in.NumeroDocumento)
		if err != nil {
			return nil, err
		}
		if otro != nil {
			return nil, domain.ErrDuplicate
		}
	}
	u.TipoDocumento = in.TipoDocumento
	u.NumeroDocumento = in.NumeroDocumento
	u.Nombre = in.Nombre
	u.Telefono = in.Telefono
	u.Direccion = in.Direccion
	u.Email = in.Email
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := dto.NewUsuarioResponse(u)
	return &resp, nil
}

// Delete se niega mientras el usuario tenga roles asignados.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id int64) error {
	roles, err := uc.usuarioRoles.ListByUsuario(ctx, id)
	if err != nil {
		return err
	}
	if len(roles) > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(ctx, id)
}
