package entity

// RolSuperadminID id reservado del rol superadmin; no se lista ni se modifica.
const RolSuperadminID int64 = 1

// Rol conjunto de permisos asignable a usuarios.
type Rol struct {
	ID          int64
	Nombre      string
	Descripcion string
}

// EsReservado indica si el rol es el superadmin.
func (r *Rol) EsReservado() bool {
	return r != nil && r.ID == RolSuperadminID
}
