package auth

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

// Resolucion roles y permisos efectivos de un usuario. Es inmutable una vez construida
// porque puede compartirse desde la caché.
type Resolucion struct {
	Roles    []dto.RolResumen
	Permisos map[string]struct{}
}

// Tiene indica si el permiso está en el conjunto.
func (r *Resolucion) Tiene(permiso string) bool {
	if r == nil {
		return false
	}
	_, ok := r.Permisos[permiso]
	return ok
}

// TieneAlguno semántica OR: basta con uno de los permisos pedidos. Una lista vacía no admite.
func (r *Resolucion) TieneAlguno(permisos ...string) bool {
	for _, p := range permisos {
		if r.Tiene(p) {
			return true
		}
	}
	return false
}

// Lista permisos ordenados, para respuestas JSON estables.
func (r *Resolucion) Lista() []string {
	out := make([]string, 0, len(r.Permisos))
	for p := range r.Permisos {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// PermissionCache caché opcional de resoluciones por usuario.
type PermissionCache interface {
	Get(usuarioID int64) (*Resolucion, bool)
	Set(usuarioID int64, r *Resolucion)
	Invalidate(usuarioID int64)
	Purge()
}

// PermissionResolver recorre usuario -> roles -> permisos con consultas secuenciales.
// Referencias colgantes (rol o permiso borrado) se omiten con un warn; solo falla
// si no se pueden listar los roles del usuario.
//
// Una resolución solo entra a la caché si todas las consultas respondieron y no hubo
// invalidaciones mientras corría (generacion).
type PermissionResolver struct {
	usuarioRoles repository.UsuarioRolRepository
	roles        repository.RolRepository
	rolPermisos  repository.RolPermisoRepository
	permisos     repository.PermisoRepository
	cache        PermissionCache
	generacion   atomic.Uint64
	log          zerolog.Logger
}

// NewPermissionResolver cache puede ser nil: resolución fresca en cada petición.
func NewPermissionResolver(repos repository.Repos, cache PermissionCache, log zerolog.Logger) *PermissionResolver {
	return &PermissionResolver{
		usuarioRoles: repos.UsuarioRoles,
		roles:        repos.Roles,
		rolPermisos:  repos.RolPermisos,
		permisos:     repos.Permisos,
		cache:        cache,
		log:          log,
	}
}

// Resolve usa la caché si existe; si no, resuelve y guarda.
func (r *PermissionResolver) Resolve(ctx context.Context, usuarioID int64) (*Resolucion, error) {
	if r.cache != nil {
		if res, ok := r.cache.Get(usuarioID); ok {
			return res, nil
		}
	}
	return r.ResolveFresh(ctx, usuarioID)
}

// ResolveFresh ignora la caché (login) y refresca la entrada.
func (r *PermissionResolver) ResolveFresh(ctx context.Context, usuarioID int64) (*Resolucion, error) {
	gen := r.generacion.Load()
	asignaciones, err := r.usuarioRoles.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("listar roles del usuario %d: %w", usuarioID, err)
	}

	res := &Resolucion{
		Roles:    make([]dto.RolResumen, 0, len(asignaciones)),
		Permisos: make(map[string]struct{}),
	}
	nombres := make(map[int64]string) // permisos ya resueltos en esta pasada
	fallos := 0

	for _, a := range asignaciones {
		rol, err := r.roles.GetByID(ctx, a.RolID)
		if err != nil {
			fallos++
		}
		if err != nil || rol == nil {
			r.log.Warn().Err(err).Int64("usuario_id", usuarioID).Int64("rol_id", a.RolID).Msg("rol asignado no resuelve, se omite")
			continue
		}
		res.Roles = append(res.Roles, dto.RolResumen{ID: rol.ID, Nombre: rol.Nombre})

		rps, err := r.rolPermisos.ListByRol(ctx, rol.ID)
		if err != nil {
			fallos++
			r.log.Warn().Err(err).Int64("rol_id", rol.ID).Msg("no se pudieron listar permisos del rol, se omite")
			continue
		}
		for _, rp := range rps {
			if nombre, ok := nombres[rp.PermisoID]; ok {
				res.Permisos[nombre] = struct{}{}
				continue
			}
			p, err := r.permisos.GetByID(ctx, rp.PermisoID)
			if err != nil {
				fallos++
			}
			if err != nil || p == nil {
				r.log.Warn().Err(err).Int64("rol_id", rol.ID).Int64("permiso_id", rp.PermisoID).Msg("permiso asignado no resuelve, se omite")
				continue
			}
			nombres[p.ID] = p.Nombre
			res.Permisos[p.Nombre] = struct{}{}
		}
	}

	r.guardar(usuarioID, res, gen, fallos)
	return res, nil
}

// guardar cachea res salvo que haya sido parcial o que una invalidación ocurriera
// después de leer gen: en ese caso res pudo leerse antes del cambio.
func (r *PermissionResolver) guardar(usuarioID int64, res *Resolucion, gen uint64, fallos int) {
	if r.cache == nil {
		return
	}
	if fallos > 0 {
		r.log.Warn().Int64("usuario_id", usuarioID).Int("fallos", fallos).Msg("resolución parcial, no se cachea")
		return
	}
	if r.generacion.Load() != gen {
		return
	}
	r.cache.Set(usuarioID, res)
}

// Invalidate descarta la resolución cacheada de un usuario.
func (r *PermissionResolver) Invalidate(usuarioID int64) {
	r.generacion.Add(1)
	if r.cache != nil {
		r.cache.Invalidate(usuarioID)
	}
}

// InvalidateAll descarta todas las resoluciones (cambió el contenido de un rol).
func (r *PermissionResolver) InvalidateAll() {
	r.generacion.Add(1)
	if r.cache != nil {
		r.cache.Purge()
	}
}
