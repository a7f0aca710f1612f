package entity

import "strings"

// Permiso capacidad atómica con nombre "<entidad>.<accion>".
type Permiso struct {
	ID          int64
	Nombre      string
	Descripcion string
}

// Acciones estándar por entidad.
const (
	AccionRead   = "read"
	AccionCreate = "create"
	AccionUpdate = "update"
	AccionDelete = "delete"
)

// Permisos del propio subsistema de autenticación.
const (
	PermUsuarioRead      = "usuario.read"
	PermUsuarioUpdate    = "usuario.update"
	PermUsuarioDelete    = "usuario.delete"
	PermCredencialRead   = "credencial.read"
	PermCredencialCreate = "credencial.create"
	PermCredencialUpd    = "credencial.update"
	PermCredencialDel    = "credencial.delete"
	PermRolRead          = "rol.read"
	PermRolCreate        = "rol.create"
	PermRolUpdate        = "rol.update"
	PermRolDelete        = "rol.delete"
	PermPermisoRead      = "permiso.read"
	PermPermisoCreate    = "permiso.create"
	PermPermisoUpdate    = "permiso.update"
	PermPermisoDelete    = "permiso.delete"
)

// EntidadesClinica entidades de la clínica que tienen permisos CRUD en el catálogo.
var EntidadesClinica = []string{
	"usuario", "credencial", "rol", "permiso",
	"mascota", "especie", "raza", "antecedente", "tratamiento",
	"medicamento", "inventario", "producto", "servicio", "venta",
	"proveedor", "cita",
}

// CatalogoPermisos nombres de todos los permisos que siembra cmd/seed.
func CatalogoPermisos() []string {
	acciones := []string{AccionRead, AccionCreate, AccionUpdate, AccionDelete}
	out := make([]string, 0, len(EntidadesClinica)*len(acciones))
	for _, e := range EntidadesClinica {
		for _, a := range acciones {
			out = append(out, e+"."+a)
		}
	}
	return out
}

// NombrePermisoValido verifica la forma "<entidad>.<accion>" (ambas partes no vacías).
func NombrePermisoValido(nombre string) bool {
	ent, acc, ok := strings.Cut(nombre, ".")
	return ok && ent != "" && acc != "" && !strings.ContainsAny(nombre, " \t\n")
}
