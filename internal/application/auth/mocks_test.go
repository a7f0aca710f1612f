package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

type mockCredencialRepo struct{ mock.Mock }

func (m *mockCredencialRepo) Create(ctx context.Context, c *entity.Credencial) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCredencialRepo) GetByID(ctx context.Context, id int64) (*entity.Credencial, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Credencial)
	return c, args.Error(1)
}
func (m *mockCredencialRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Credencial, error) {
	args := m.Called(ctx, usuario)
	c, _ := args.Get(0).(*entity.Credencial)
	return c, args.Error(1)
}
func (m *mockCredencialRepo) GetByUsuarioID(ctx context.Context, id int64) (*entity.Credencial, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Credencial)
	return c, args.Error(1)
}
func (m *mockCredencialRepo) Update(ctx context.Context, c *entity.Credencial) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCredencialRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUsuarioRepo struct{ mock.Mock }

func (m *mockUsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.Usuario)
	return u, args.Error(1)
}
func (m *mockUsuarioRepo) GetByDocumento(ctx context.Context, n string) (*entity.Usuario, error) {
	args := m.Called(ctx, n)
	u, _ := args.Get(0).(*entity.Usuario)
	return u, args.Error(1)
}
func (m *mockUsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUsuarioRepo) List(ctx context.Context, limit, offset int) ([]*entity.Usuario, error) {
	args := m.Called(ctx, limit, offset)
	l, _ := args.Get(0).([]*entity.Usuario)
	return l, args.Error(1)
}
func (m *mockUsuarioRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRolRepo struct{ mock.Mock }

func (m *mockRolRepo) Create(ctx context.Context, r *entity.Rol) error { return m.Called(ctx, r).Error(0) }
func (m *mockRolRepo) GetByID(ctx context.Context, id int64) (*entity.Rol, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*entity.Rol)
	return r, args.Error(1)
}
func (m *mockRolRepo) GetByNombre(ctx context.Context, n string) (*entity.Rol, error) {
	args := m.Called(ctx, n)
	r, _ := args.Get(0).(*entity.Rol)
	return r, args.Error(1)
}
func (m *mockRolRepo) Update(ctx context.Context, r *entity.Rol) error { return m.Called(ctx, r).Error(0) }
func (m *mockRolRepo) List(ctx context.Context) ([]*entity.Rol, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*entity.Rol)
	return l, args.Error(1)
}
func (m *mockRolRepo) Delete(ctx context.Context, id int64) error { return m.Called(ctx, id).Error(0) }

type mockPermisoRepo struct{ mock.Mock }

func (m *mockPermisoRepo) Create(ctx context.Context, p *entity.Permiso) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPermisoRepo) GetByID(ctx context.Context, id int64) (*entity.Permiso, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Permiso)
	return p, args.Error(1)
}
func (m *mockPermisoRepo) GetByNombre(ctx context.Context, n string) (*entity.Permiso, error) {
	args := m.Called(ctx, n)
	p, _ := args.Get(0).(*entity.Permiso)
	return p, args.Error(1)
}
func (m *mockPermisoRepo) Update(ctx context.Context, p *entity.Permiso) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPermisoRepo) List(ctx context.Context) ([]*entity.Permiso, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*entity.Permiso)
	return l, args.Error(1)
}
func (m *mockPermisoRepo) Delete(ctx context.Context, id int64) error { return m.Called(ctx, id).Error(0) }

type mockRolPermisoRepo struct{ mock.Mock }

func (m *mockRolPermisoRepo) Create(ctx context.Context, rp *entity.RolPermiso) error {
	return m.Called(ctx, rp).Error(0)
}
func (m *mockRolPermisoRepo) GetByID(ctx context.Context, id int64) (*entity.RolPermiso, error) {
	args := m.Called(ctx, id)
	rp, _ := args.Get(0).(*entity.RolPermiso)
	return rp, args.Error(1)
}
func (m *mockRolPermisoRepo) Get(ctx context.Context, rolID, permisoID int64) (*entity.RolPermiso, error) {
	args := m.Called(ctx, rolID, permisoID)
	rp, _ := args.Get(0).(*entity.RolPermiso)
	return rp, args.Error(1)
}
func (m *mockRolPermisoRepo) ListByRol(ctx context.Context, rolID int64) ([]*entity.RolPermiso, error) {
	args := m.Called(ctx, rolID)
	l, _ := args.Get(0).([]*entity.RolPermiso)
	return l, args.Error(1)
}
func (m *mockRolPermisoRepo) CountByPermiso(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *mockRolPermisoRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUsuarioRolRepo struct{ mock.Mock }

func (m *mockUsuarioRolRepo) Create(ctx context.Context, ur *entity.UsuarioRol) error {
	return m.Called(ctx, ur).Error(0)
}
func (m *mockUsuarioRolRepo) GetByID(ctx context.Context, id int64) (*entity.UsuarioRol, error) {
	args := m.Called(ctx, id)
	ur, _ := args.Get(0).(*entity.UsuarioRol)
	return ur, args.Error(1)
}
func (m *mockUsuarioRolRepo) Get(ctx context.Context, usuarioID, rolID int64) (*entity.UsuarioRol, error) {
	args := m.Called(ctx, usuarioID, rolID)
	ur, _ := args.Get(0).(*entity.UsuarioRol)
	return ur, args.Error(1)
}
func (m *mockUsuarioRolRepo) ListByUsuario(ctx context.Context, id int64) ([]*entity.UsuarioRol, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).([]*entity.UsuarioRol)
	return l, args.Error(1)
}
func (m *mockUsuarioRolRepo) CountByRol(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *mockUsuarioRolRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// fakeTx ejecuta fn con los mismos repos, sin transacción real.
type fakeTx struct{ repos repository.Repos }

func (f fakeTx) Run(ctx context.Context, fn func(repository.Repos) error) error {
	return fn(f.repos)
}

type testRepos struct {
	cred     *mockCredencialRepo
	usuarios *mockUsuarioRepo
	roles    *mockRolRepo
	permisos *mockPermisoRepo
	rp       *mockRolPermisoRepo
	ur       *mockUsuarioRolRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		cred:     &mockCredencialRepo{},
		usuarios: &mockUsuarioRepo{},
		roles:    &mockRolRepo{},
		permisos: &mockPermisoRepo{},
		rp:       &mockRolPermisoRepo{},
		ur:       &mockUsuarioRolRepo{},
	}
}

func (t *testRepos) repos() repository.Repos {
	return repository.Repos{
		Usuarios:     t.usuarios,
		Credenciales: t.cred,
		Roles:        t.roles,
		Permisos:     t.permisos,
		RolPermisos:  t.rp,
		UsuarioRoles: t.ur,
	}
}

// grafo carga en los mocks: usuario 1 con roles A(10) y B(20);
// A -> {p1, p2}, B -> {p2, p3}.
func (t *testRepos) grafo() {
	t.ur.On("ListByUsuario", mock.Anything, int64(1)).Return([]*entity.UsuarioRol{
		{ID: 1, UsuarioID: 1, RolID: 10},
		{ID: 2, UsuarioID: 1, RolID: 20},
	}, nil)
	t.roles.On("GetByID", mock.Anything, int64(10)).Return(&entity.Rol{ID: 10, Nombre: "A"}, nil)
	t.roles.On("GetByID", mock.Anything, int64(20)).Return(&entity.Rol{ID: 20, Nombre: "B"}, nil)
	t.rp.On("ListByRol", mock.Anything, int64(10)).Return([]*entity.RolPermiso{
		{ID: 1, RolID: 10, PermisoID: 100},
		{ID: 2, RolID: 10, PermisoID: 200},
	}, nil)
	t.rp.On("ListByRol", mock.Anything, int64(20)).Return([]*entity.RolPermiso{
		{ID: 3, RolID: 20, PermisoID: 200},
		{ID: 4, RolID: 20, PermisoID: 300},
	}, nil)
	t.permisos.On("GetByID", mock.Anything, int64(100)).Return(&entity.Permiso{ID: 100, Nombre: "p1"}, nil)
	t.permisos.On("GetByID", mock.Anything, int64(200)).Return(&entity.Permiso{ID: 200, Nombre: "p2"}, nil)
	t.permisos.On("GetByID", mock.Anything, int64(300)).Return(&entity.Permiso{ID: 300, Nombre: "p3"}, nil)
}
