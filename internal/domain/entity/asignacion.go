package entity

// RolPermiso asignación de un Permiso a un Rol; el par es único.
type RolPermiso struct {
	ID        int64
	RolID     int64
	PermisoID int64
}

// UsuarioRol asignación de un Rol a un Usuario; el par es único.
type UsuarioRol struct {
	ID        int64
	UsuarioID int64
	RolID     int64
}
