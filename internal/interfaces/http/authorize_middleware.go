package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/veterinaria-api/internal/application/auth"
)

// LocalPermisos resolución de permisos del usuario para la petición en curso.
const LocalPermisos = "permisos"

// PermissionChecker contrato mínimo del middleware; lo implementa *auth.PermissionResolver.
type PermissionChecker interface {
	Resolve(ctx context.Context, usuarioID int64) (*auth.Resolucion, error)
}

type authorizeRecorder interface {
	Authorize(permitido bool)
}

// Authorizer construye middlewares de autorización que comparten resolver y métricas.
type Authorizer struct {
	checker PermissionChecker
	metrics authorizeRecorder
}

// NewAuthorizer metrics puede ser nil.
func NewAuthorizer(checker PermissionChecker, metrics authorizeRecorder) *Authorizer {
	return &Authorizer{checker: checker, metrics: metrics}
}

// Authorize sin métricas; ver (*Authorizer).Require.
func Authorize(checker PermissionChecker, perms ...string) fiber.Handler {
	return NewAuthorizer(checker, nil).Require(perms...)
}

// Require admite la petición si el usuario tiene AL MENOS UNO de perms.
// Debe montarse DESPUÉS de AuthMiddleware.
//
//   - 401 si no hay usuario en el contexto.
//   - 403 si el conjunto de permisos no intersecta perms (o perms está vacío).
//   - 500 si la resolución de permisos falla.
func (a *Authorizer) Require(perms ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usuarioID := GetUsuarioID(c)
		if usuarioID <= 0 {
			return respondFail(c, fiber.StatusUnauthorized, MsgTokenMissing)
		}

		res, err := a.checker.Resolve(c.UserContext(), usuarioID)
		if err != nil {
			return respondError(c, err)
		}

		permitido := res.TieneAlguno(perms...)
		if a.metrics != nil {
			a.metrics.Authorize(permitido)
		}
		if !permitido {
			log.Debug().Int64("usuario_id", usuarioID).Strs("requeridos", perms).Msg("acceso denegado")
			return respondFail(c, fiber.StatusForbidden, "no tiene permisos para esta operación")
		}

		c.Locals(LocalPermisos, res)
		return c.Next()
	}
}
