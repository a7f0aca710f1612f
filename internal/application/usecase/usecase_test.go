package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/pkg/password"
)

func seedUsuarioYRol(t *testing.T, s *memStore) (usuarioID, rolID int64) {
	t.Helper()
	ctx := context.Background()
	r := s.repos()
	u := &entity.Usuario{TipoDocumento: "CC", NumeroDocumento: "1", Nombre: "Ana"}
	require.NoError(t, r.Usuarios.Create(ctx, u))
	rol := &entity.Rol{Nombre: "recepcion"}
	require.NoError(t, r.Roles.Create(ctx, rol))
	return u.ID, rol.ID
}

// ─── Asignaciones ─────────────────────────────────────────────────────────────

func TestAsignarRol_DuplicadoEsConflictoYQuedaUnaFila(t *testing.T) {
	s := newMemStore()
	cache := &spyCache{}
	uc := NewAsignacionUseCase(memTx{s}, s.repos(), cache)
	usuarioID, rolID := seedUsuarioYRol(t, s)
	ctx := context.Background()

	primero, err := uc.AsignarRol(ctx, usuarioID, rolID)
	require.NoError(t, err)

	_, err = uc.AsignarRol(ctx, usuarioID, rolID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	roles, err := uc.RolesDeUsuario(ctx, usuarioID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, primero.ID, roles[0].ID)
	assert.Equal(t, []int64{usuarioID}, cache.invalidados)
}

func TestAsignarRol_RolInexistente(t *testing.T) {
	s := newMemStore()
	uc := NewAsignacionUseCase(memTx{s}, s.repos(), nil)
	usuarioID, _ := seedUsuarioYRol(t, s)

	_, err := uc.AsignarRol(context.Background(), usuarioID, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuitarRol_DeOtroUsuarioEsNotFound(t *testing.T) {
	s := newMemStore()
	uc := NewAsignacionUseCase(memTx{s}, s.repos(), nil)
	usuarioID, rolID := seedUsuarioYRol(t, s)
	ctx := context.Background()

	a, err := uc.AsignarRol(ctx, usuarioID, rolID)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.QuitarRol(ctx, usuarioID+1, a.ID), domain.ErrNotFound)
	assert.NoError(t, uc.QuitarRol(ctx, usuarioID, a.ID))
}

func TestAsignarRol_SuperadminReservado(t *testing.T) {
	s := newMemStore()
	cache := &spyCache{}
	uc := NewAsignacionUseCase(memTx{s}, s.repos(), cache)
	usuarioID, _ := seedUsuarioYRol(t, s)
	ctx := context.Background()

	_, err := uc.AsignarRol(ctx, usuarioID, entity.RolSuperadminID)
	assert.ErrorIs(t, err, domain.ErrReservedRole)

	roles, err := uc.RolesDeUsuario(ctx, usuarioID)
	require.NoError(t, err)
	assert.Empty(t, roles)
	assert.Empty(t, cache.invalidados)
}

func TestQuitarRol_SuperadminReservado(t *testing.T) {
	s := newMemStore()
	uc := NewAsignacionUseCase(memTx{s}, s.repos(), nil)
	usuarioID, _ := seedUsuarioYRol(t, s)
	ctx := context.Background()

	// el superadmin entra por seed, directo al repositorio
	ur := &entity.UsuarioRol{UsuarioID: usuarioID, RolID: entity.RolSuperadminID}
	require.NoError(t, s.repos().UsuarioRoles.Create(ctx, ur))

	assert.ErrorIs(t, uc.QuitarRol(ctx, usuarioID, ur.ID), domain.ErrReservedRole)

	roles, err := uc.RolesDeUsuario(ctx, usuarioID)
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestAsignarPermiso_PurgaCacheYRechazaDuplicado(t *testing.T) {
	s := newMemStore()
	cache := &spyCache{}
	uc := NewAsignacionUseCase(memTx{s}, s.repos(), cache)
	_, rolID := seedUsuarioYRol(t, s)
	ctx := context.Background()
	p := &entity.Permiso{Nombre: "mascota.read"}
	require.NoError(t, s.repos().Permisos.Create(ctx, p))

	_, err := uc.AsignarPermiso(ctx, rolID, p.ID)
	require.NoError(t, err)
	_, err = uc.AsignarPermiso(ctx, rolID, p.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.Equal(t, 1, cache.purgas)
}

func TestQuitarPermiso_SuperadminReservado(t *testing.T) {
	s := newMemStore()
	uc := NewAsignacionUseCase(memTx{s}, s.repos(), nil)
	assert.ErrorIs(t, uc.QuitarPermiso(context.Background(), entity.RolSuperadminID, 1), domain.ErrReservedRole)
}

// ─── Roles y permisos ─────────────────────────────────────────────────────────

func TestRol_SuperadminNoSeModifica(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	uc := NewRolUseCase(r.Roles, r.UsuarioRoles, r.RolPermisos, nil)
	ctx := context.Background()

	_, err := uc.Update(ctx, entity.RolSuperadminID, dto.RolRequest{Nombre: "otro"})
	assert.ErrorIs(t, err, domain.ErrReservedRole)
	assert.ErrorIs(t, uc.Delete(ctx, entity.RolSuperadminID), domain.ErrReservedRole)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	for _, rol := range list {
		assert.NotEqual(t, entity.RolSuperadminID, rol.ID)
	}
}

func TestRol_DeleteConUsuariosBloqueado(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	uc := NewRolUseCase(r.Roles, r.UsuarioRoles, r.RolPermisos, nil)
	asig := NewAsignacionUseCase(memTx{s}, r, nil)
	usuarioID, rolID := seedUsuarioYRol(t, s)
	ctx := context.Background()

	_, err := asig.AsignarRol(ctx, usuarioID, rolID)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, rolID), domain.ErrHasDependents)
}

func TestRol_CreateNombreRepetido(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	uc := NewRolUseCase(r.Roles, r.UsuarioRoles, r.RolPermisos, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.RolRequest{Nombre: "veterinario"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.RolRequest{Nombre: "veterinario"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRol_RenombrarPurgaCache(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	cache := &spyCache{}
	uc := NewRolUseCase(r.Roles, r.UsuarioRoles, r.RolPermisos, cache)
	_, rolID := seedUsuarioYRol(t, s)

	out, err := uc.Update(context.Background(), rolID, dto.RolRequest{Nombre: "recepcionista"})
	require.NoError(t, err)
	assert.Equal(t, "recepcionista", out.Nombre)
	assert.Equal(t, 1, cache.purgas)
}

func TestPermiso_DeletePurgaCache(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	cache := &spyCache{}
	uc := NewPermisoUseCase(r.Permisos, r.RolPermisos, cache)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.PermisoRequest{Nombre: "mascota.read"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, p.ID))
	assert.Equal(t, 1, cache.purgas)

	_, err = uc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPermiso_NombreInvalido(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	uc := NewPermisoUseCase(r.Permisos, r.RolPermisos, nil)

	_, err := uc.Create(context.Background(), dto.PermisoRequest{Nombre: "sinpunto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPermiso_DeleteAsignadoBloqueado(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	uc := NewPermisoUseCase(r.Permisos, r.RolPermisos, nil)
	asig := NewAsignacionUseCase(memTx{s}, r, nil)
	_, rolID := seedUsuarioYRol(t, s)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.PermisoRequest{Nombre: "venta.read"})
	require.NoError(t, err)
	_, err = asig.AsignarPermiso(ctx, rolID, p.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, p.ID), domain.ErrHasDependents)
}

// ─── Usuarios y credenciales ─────────────────────────────────────────────────

func TestUsuario_DeleteConRolesBloqueado(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	uc := NewUsuarioUseCase(r.Usuarios, r.UsuarioRoles)
	asig := NewAsignacionUseCase(memTx{s}, r, nil)
	usuarioID, rolID := seedUsuarioYRol(t, s)
	ctx := context.Background()

	_, err := asig.AsignarRol(ctx, usuarioID, rolID)
	require.NoError(t, err)
	assert.ErrorIs(t, uc.Delete(ctx, usuarioID), domain.ErrHasDependents)
}

func TestUsuario_GetInexistente(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	uc := NewUsuarioUseCase(r.Usuarios, r.UsuarioRoles)
	_, err := uc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCredencial_CreateHasheaYNormaliza(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	uc := NewCredencialUseCase(r.Credenciales, r.Usuarios, hasher)
	usuarioID, _ := seedUsuarioYRol(t, s)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.CreateCredencialRequest{UsuarioID: usuarioID, Usuario: "  ana ", Contrasena: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "ana", resp.Usuario)
	assert.True(t, resp.Activo)

	guardada, err := r.Credenciales.GetByUsuario(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.NotEqual(t, "secreta123", guardada.Contrasena)
	assert.True(t, hasher.Check("secreta123", guardada.Contrasena))
}

func TestCredencial_UpdateHandleTomado(t *testing.T) {
	s := newMemStore()
	r := s.repos()
	uc := NewCredencialUseCase(r.Credenciales, r.Usuarios, password.NewBcryptHasher(bcrypt.MinCost))
	ctx := context.Background()

	u1 := &entity.Usuario{NumeroDocumento: "1"}
	u2 := &entity.Usuario{NumeroDocumento: "2"}
	require.NoError(t, r.Usuarios.Create(ctx, u1))
	require.NoError(t, r.Usuarios.Create(ctx, u2))
	_, err := uc.Create(ctx, dto.CreateCredencialRequest{UsuarioID: u1.ID, Usuario: "ana", Contrasena: "secreta123"})
	require.NoError(t, err)
	c2, err := uc.Create(ctx, dto.CreateCredencialRequest{UsuarioID: u2.ID, Usuario: "beto", Contrasena: "secreta123"})
	require.NoError(t, err)

	tomado := "ana"
	_, err = uc.Update(ctx, c2.ID, dto.UpdateCredencialRequest{Usuario: &tomado})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	inactivo := false
	upd, err := uc.Update(ctx, c2.ID, dto.UpdateCredencialRequest{Activo: &inactivo})
	require.NoError(t, err)
	assert.False(t, upd.Activo)
}
