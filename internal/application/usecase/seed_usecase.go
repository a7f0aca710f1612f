package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
	"github.com/jhoicas/veterinaria-api/pkg/password"
)

// SeedInput superadmin inicial; AdminUsuario vacío omite la creación del usuario.
type SeedInput struct {
	AdminUsuario    string
	AdminContrasena string
	AdminDocumento  string
	AdminNombre     string
}

// SeedResult conteo de filas creadas en esta corrida.
type SeedResult struct {
	PermisosCreados  int
	AsignacionesRol1 int
	AdminCreado      bool
	AdminRolAsignado bool
}

// SeedUseCase siembra catálogo de permisos, permisos del superadmin y usuario inicial.
// Se puede correr varias veces: solo crea lo que falta.
type SeedUseCase struct {
	tx     repository.TxRunner
	hasher password.Hasher
	log    zerolog.Logger
}

func NewSeedUseCase(tx repository.TxRunner, hasher password.Hasher, log zerolog.Logger) *SeedUseCase {
	return &SeedUseCase{tx: tx, hasher: hasher, log: log}
}

func (uc *SeedUseCase) Run(ctx context.Context, in SeedInput) (*SeedResult, error) {
	res := &SeedResult{}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		superadmin, err := r.Roles.GetByID(ctx, entity.RolSuperadminID)
		if err != nil {
			return err
		}
		if superadmin == nil {
			return fmt.Errorf("%w: rol superadmin (id %d); corra las migraciones primero", domain.ErrNotFound, entity.RolSuperadminID)
		}

		for _, nombre := range entity.CatalogoPermisos() {
			p, err := r.Permisos.GetByNombre(ctx, nombre)
			if err != nil {
				return err
			}
			if p == nil {
				p = &entity.Permiso{Nombre: nombre}
				if err := r.Permisos.Create(ctx, p); err != nil {
					return err
				}
				res.PermisosCreados++
			}
			rp, err := r.RolPermisos.Get(ctx, superadmin.ID, p.ID)
			if err != nil {
				return err
			}
			if rp == nil {
				if err := r.RolPermisos.Create(ctx, &entity.RolPermiso{RolID: superadmin.ID, PermisoID: p.ID}); err != nil {
					return err
				}
				res.AsignacionesRol1++
			}
		}

		if in.AdminUsuario == "" {
			return nil
		}
		return uc.seedAdmin(ctx, r, in, res)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int("permisos_creados", res.PermisosCreados).
		Int("asignaciones_superadmin", res.AsignacionesRol1).
		Bool("admin_creado", res.AdminCreado).
		Msg("seed completado")
	return res, nil
}

func (uc *SeedUseCase) seedAdmin(ctx context.Context, r repository.Repos, in SeedInput, res *SeedResult) error {
	handle := entity.NormalizarUsuario(in.AdminUsuario)
	cred, err := r.Credenciales.GetByUsuario(ctx, handle)
	if err != nil {
		return err
	}
	if cred == nil {
		if len(in.AdminContrasena) < 8 {
			return fmt.Errorf("%w: la contraseña del superadmin debe tener al menos 8 caracteres", domain.ErrInvalidInput)
		}
		u, err := r.Usuarios.GetByDocumento(ctx, in.AdminDocumento)
		if err != nil {
			return err
		}
		if u == nil {
			u = &entity.Usuario{TipoDocumento: "CC", NumeroDocumento: in.AdminDocumento, Nombre: in.AdminNombre}
			if err := r.Usuarios.Create(ctx, u); err != nil {
				return err
			}
		}
		hash, err := uc.hasher.Hash(in.AdminContrasena)
		if err != nil {
			return err
		}
		cred = &entity.Credencial{UsuarioID: u.ID, Usuario: handle, Contrasena: hash, Activo: true}
		if err := r.Credenciales.Create(ctx, cred); err != nil {
			return err
		}
		res.AdminCreado = true
	}

	ur, err := r.UsuarioRoles.Get(ctx, cred.UsuarioID, entity.RolSuperadminID)
	if err != nil {
		return err
	}
	if ur == nil {
		if err := r.UsuarioRoles.Create(ctx, &entity.UsuarioRol{UsuarioID: cred.UsuarioID, RolID: entity.RolSuperadminID}); err != nil {
			return err
		}
		res.AdminRolAsignado = true
	}
	return nil
}
