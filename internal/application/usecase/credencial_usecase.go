package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
	"github.com/jhoicas/veterinaria-api/pkg/password"
)

// CredencialUseCase administración de credenciales. Toda contraseña se hashea antes de persistir.
type CredencialUseCase struct {
	repo     repository.CredencialRepository
	usuarios repository.UsuarioRepository
	hasher   password.Hasher
}

func NewCredencialUseCase(repo repository.CredencialRepository, usuarios repository.UsuarioRepository, hasher password.Hasher) *CredencialUseCase {
	return &CredencialUseCase{repo: repo, usuarios: usuarios, hasher: hasher}
}

// Create exige usuario existente sin credencial previa y handle libre.
func (uc *CredencialUseCase) Create(ctx context.Context, in dto.CreateCredencialRequest) (*dto.CredencialResponse, error) {
	handle := entity.NormalizarUsuario(in.Usuario)
	if handle == "" {
		return nil, fmt.Errorf("%w: usuario vacío", domain.ErrInvalidInput)
	}

	u, err := uc.usuarios.GetByID(ctx, in.UsuarioID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if existente, err := uc.repo.GetByUsuarioID(ctx, in.UsuarioID); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, fmt.Errorf("%w: el usuario ya tiene credencial", domain.ErrDuplicate)
	}
	if tomado, err := uc.repo.GetByUsuario(ctx, handle); err != nil {
		return nil, err
	} else if tomado != nil {
		return nil, fmt.Errorf("%w: el usuario %q ya existe", domain.ErrDuplicate, handle)
	}

	hash, err := uc.hasher.Hash(in.Contrasena)
	if err != nil {
		return nil, err
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	c := &entity.Credencial{UsuarioID: in.UsuarioID, Usuario: handle, Contrasena: hash, Activo: activo}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCredencialResponse(c)
	return &resp, nil
}

func (uc *CredencialUseCase) GetByID(ctx context.Context, id int64) (*dto.CredencialResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCredencialResponse(c)
	return &resp, nil
}

// Update aplica solo los campos presentes.
func (uc *CredencialUseCase) Update(ctx context.Context, id int64, in dto.UpdateCredencialRequest) (*dto.CredencialResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Usuario != nil {
		handle := entity.NormalizarUsuario(*in.Usuario)
		if handle == "" {
			return nil, fmt.Errorf("%w: usuario vacío", domain.ErrInvalidInput)
		}
		if handle != c.Usuario {
			tomado, err := uc.repo.GetByUsuario(ctx, handle)
			if err != nil {
				return nil, err
			}
			if tomado != nil {
				return nil, fmt.Errorf("%w: el usuario %q ya existe", domain.ErrDuplicate, handle)
			}
			c.Usuario = handle
		}
	}
	if in.Contrasena != nil {
		hash, err := uc.hasher.Hash(*in.Contrasena)
		if err != nil {
			return nil, err
		}
		c.Contrasena = hash
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCredencialResponse(c)
	return &resp, nil
}

func (uc *CredencialUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
