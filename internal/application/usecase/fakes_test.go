package usecase

import (
	"context"
	"sync"

	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

// memStore repositorios en memoria con las mismas reglas de unicidad que el esquema.
type memStore struct {
	mu           sync.Mutex
	seq          int64
	usuarios     map[int64]*entity.Usuario
	credenciales map[int64]*entity.Credencial
	roles        map[int64]*entity.Rol
	permisos     map[int64]*entity.Permiso
	usuarioRoles map[int64]*entity.UsuarioRol
	rolPermisos  map[int64]*entity.RolPermiso
}

func newMemStore() *memStore {
	return &memStore{
		seq:          100,
		usuarios:     map[int64]*entity.Usuario{},
		credenciales: map[int64]*entity.Credencial{},
		roles:        map[int64]*entity.Rol{entity.RolSuperadminID: {ID: entity.RolSuperadminID, Nombre: "superadmin"}},
		permisos:     map[int64]*entity.Permiso{},
		usuarioRoles: map[int64]*entity.UsuarioRol{},
		rolPermisos:  map[int64]*entity.RolPermiso{},
	}
}

func (s *memStore) next() int64 {
	s.seq++
	return s.seq
}

func (s *memStore) repos() repository.Repos {
	return repository.Repos{
		Usuarios:     memUsuarios{s},
		Credenciales: memCredenciales{s},
		Roles:        memRoles{s},
		Permisos:     memPermisos{s},
		RolPermisos:  memRolPermisos{s},
		UsuarioRoles: memUsuarioRoles{s},
	}
}

type memTx struct{ s *memStore }

func (t memTx) Run(ctx context.Context, fn func(repository.Repos) error) error {
	return fn(t.s.repos())
}

// ─── usuarios ────────────────────────────────────────────────────────────────

type memUsuarios struct{ s *memStore }

func (m memUsuarios) Create(_ context.Context, u *entity.Usuario) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, x := range m.s.usuarios {
		if x.NumeroDocumento == u.NumeroDocumento {
			return domain.ErrDuplicate
		}
	}
	u.ID = m.s.next()
	cp := *u
	m.s.usuarios[u.ID] = &cp
	return nil
}

func (m memUsuarios) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if u, ok := m.s.usuarios[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m memUsuarios) GetByDocumento(_ context.Context, n string) (*entity.Usuario, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.usuarios {
		if u.NumeroDocumento == n {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m memUsuarios) Update(_ context.Context, u *entity.Usuario) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.usuarios[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	m.s.usuarios[u.ID] = &cp
	return nil
}

func (m memUsuarios) List(_ context.Context, limit, offset int) ([]*entity.Usuario, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []*entity.Usuario
	for _, u := range m.s.usuarios {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m memUsuarios) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.usuarios[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.s.usuarios, id)
	return nil
}

// ─── credenciales ────────────────────────────────────────────────────────────

type memCredenciales struct{ s *memStore }

func (m memCredenciales) Create(_ context.Context, c *entity.Credencial) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, x := range m.s.credenciales {
		if x.Usuario == c.Usuario || x.UsuarioID == c.UsuarioID {
			return domain.ErrDuplicate
		}
	}
	c.ID = m.s.next()
	cp := *c
	m.s.credenciales[c.ID] = &cp
	return nil
}

func (m memCredenciales) find(pred func(*entity.Credencial) bool) (*entity.Credencial, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, c := range m.s.credenciales {
		if pred(c) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m memCredenciales) GetByID(_ context.Context, id int64) (*entity.Credencial, error) {
	return m.find(func(c *entity.Credencial) bool { return c.ID == id })
}

func (m memCredenciales) GetByUsuario(_ context.Context, u string) (*entity.Credencial, error) {
	return m.find(func(c *entity.Credencial) bool { return c.Usuario == u })
}

func (m memCredenciales) GetByUsuarioID(_ context.Context, id int64) (*entity.Credencial, error) {
	return m.find(func(c *entity.Credencial) bool { return c.UsuarioID == id })
}

func (m memCredenciales) Update(_ context.Context, c *entity.Credencial) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.credenciales[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	m.s.credenciales[c.ID] = &cp
	return nil
}

func (m memCredenciales) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.credenciales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.s.credenciales, id)
	return nil
}

// ─── roles ───────────────────────────────────────────────────────────────────

type memRoles struct{ s *memStore }

func (m memRoles) Create(_ context.Context, r *entity.Rol) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	r.ID = m.s.next()
	cp := *r
	m.s.roles[r.ID] = &cp
	return nil
}

func (m memRoles) GetByID(_ context.Context, id int64) (*entity.Rol, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if r, ok := m.s.roles[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (m memRoles) GetByNombre(_ context.Context, n string) (*entity.Rol, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, r := range m.s.roles {
		if r.Nombre == n {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m memRoles) Update(_ context.Context, r *entity.Rol) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	cp := *r
	m.s.roles[r.ID] = &cp
	return nil
}

func (m memRoles) List(_ context.Context) ([]*entity.Rol, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []*entity.Rol
	for _, r := range m.s.roles {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m memRoles) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.roles, id)
	return nil
}

// ─── permisos ────────────────────────────────────────────────────────────────

type memPermisos struct{ s *memStore }

func (m memPermisos) Create(_ context.Context, p *entity.Permiso) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	p.ID = m.s.next()
	cp := *p
	m.s.permisos[p.ID] = &cp
	return nil
}

func (m memPermisos) GetByID(_ context.Context, id int64) (*entity.Permiso, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if p, ok := m.s.permisos[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m memPermisos) GetByNombre(_ context.Context, n string) (*entity.Permiso, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, p := range m.s.permisos {
		if p.Nombre == n {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m memPermisos) Update(_ context.Context, p *entity.Permiso) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	cp := *p
	m.s.permisos[p.ID] = &cp
	return nil
}

func (m memPermisos) List(_ context.Context) ([]*entity.Permiso, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []*entity.Permiso
	for _, p := range m.s.permisos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m memPermisos) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.permisos, id)
	return nil
}

// ─── asignaciones ────────────────────────────────────────────────────────────

type memUsuarioRoles struct{ s *memStore }

func (m memUsuarioRoles) Create(_ context.Context, ur *entity.UsuarioRol) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, x := range m.s.usuarioRoles {
		if x.UsuarioID == ur.UsuarioID && x.RolID == ur.RolID {
			return domain.ErrConflict
		}
	}
	ur.ID = m.s.next()
	cp := *ur
	m.s.usuarioRoles[ur.ID] = &cp
	return nil
}

func (m memUsuarioRoles) GetByID(_ context.Context, id int64) (*entity.UsuarioRol, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if ur, ok := m.s.usuarioRoles[id]; ok {
		cp := *ur
		return &cp, nil
	}
	return nil, nil
}

func (m memUsuarioRoles) Get(_ context.Context, usuarioID, rolID int64) (*entity.UsuarioRol, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, ur := range m.s.usuarioRoles {
		if ur.UsuarioID == usuarioID && ur.RolID == rolID {
			cp := *ur
			return &cp, nil
		}
	}
	return nil, nil
}

func (m memUsuarioRoles) ListByUsuario(_ context.Context, usuarioID int64) ([]*entity.UsuarioRol, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []*entity.UsuarioRol
	for _, ur := range m.s.usuarioRoles {
		if ur.UsuarioID == usuarioID {
			cp := *ur
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m memUsuarioRoles) CountByRol(_ context.Context, rolID int64) (int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	n := 0
	for _, ur := range m.s.usuarioRoles {
		if ur.RolID == rolID {
			n++
		}
	}
	return n, nil
}

func (m memUsuarioRoles) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.usuarioRoles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.s.usuarioRoles, id)
	return nil
}

type memRolPermisos struct{ s *memStore }

func (m memRolPermisos) Create(_ context.Context, rp *entity.RolPermiso) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, x := range m.s.rolPermisos {
		if x.RolID == rp.RolID && x.PermisoID == rp.PermisoID {
			return domain.ErrConflict
		}
	}
	rp.ID = m.s.next()
	cp := *rp
	m.s.rolPermisos[rp.ID] = &cp
	return nil
}

func (m memRolPermisos) GetByID(_ context.Context, id int64) (*entity.RolPermiso, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if rp, ok := m.s.rolPermisos[id]; ok {
		cp := *rp
		return &cp, nil
	}
	return nil, nil
}

func (m memRolPermisos) Get(_ context.Context, rolID, permisoID int64) (*entity.RolPermiso, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, rp := range m.s.rolPermisos {
		if rp.RolID == rolID && rp.PermisoID == permisoID {
			cp := *rp
			return &cp, nil
		}
	}
	return nil, nil
}

func (m memRolPermisos) ListByRol(_ context.Context, rolID int64) ([]*entity.RolPermiso, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []*entity.RolPermiso
	for _, rp := range m.s.rolPermisos {
		if rp.RolID == rolID {
			cp := *rp
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m memRolPermisos) CountByPermiso(_ context.Context, permisoID int64) (int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	n := 0
	for _, rp := range m.s.rolPermisos {
		if rp.PermisoID == permisoID {
			n++
		}
	}
	return n, nil
}

func (m memRolPermisos) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.rolPermisos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.s.rolPermisos, id)
	return nil
}

// spyCache registra invalidaciones.
type spyCache struct {
	invalidados []int64
	purgas      int
}

func (c *spyCache) Invalidate(id int64) { c.invalidados = append(c.invalidados, id) }
func (c *spyCache) InvalidateAll()      { c.purgas++ }
