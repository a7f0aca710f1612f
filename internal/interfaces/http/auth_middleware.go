package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/veterinaria-api/pkg/jwt"
)

// Locals que deja la verificación de tokens.
const (
	LocalUsuarioID       = "usuario_id"
	LocalJTI             = "jti"
	LocalTokenExp        = "token_exp"
	LocalRefreshRestante = "refresh_restante"
	LocalRefreshJTI      = "refresh_jti"
	LocalRefreshExp      = "refresh_exp"
)

// Nombres de cookie para los tokens.
const (
	CookieToken   = "token"
	CookieRefresh = "refreshToken"
)

// Mensajes 401 que el cliente usa para decidir entre refrescar o pedir login.
const (
	MsgTokenExpired = "TOKEN_EXPIRED: el token ha expirado"
	MsgTokenInvalid = "TOKEN_INVALID: token inválido"
	MsgTokenMissing = "TOKEN_INVALID: token requerido"
	MsgTokenRevoked = "TOKEN_INVALID: sesión cerrada"
)

// TokenVerifier lo cumple *jwt.Issuer.
type TokenVerifier interface {
	VerifyAccess(token string) (*jwt.Claims, error)
	VerifyRefresh(token string) (*jwt.Claims, error)
	Remaining(c *jwt.Claims) time.Duration
}

// RevocationChecker consulta la denylist de tokens (opcional).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware valida el access token (Bearer o cookie "token") y deja el id de usuario,
// el jti y la expiración en Locals. denylist puede ser nil.
func AuthMiddleware(verifier TokenVerifier, denylist RevocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractAccessToken(c)
		if tokenString == "" {
			return respondFail(c, fiber.StatusUnauthorized, MsgTokenMissing)
		}
		claims, err := verifier.VerifyAccess(tokenString)
		if err != nil {
			return respondTokenError(c, err)
		}
		if denylist != nil && claims.ID != "" {
			revoked, err := denylist.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return respondError(c, err)
			}
			if revoked {
				return respondFail(c, fiber.StatusUnauthorized, MsgTokenRevoked)
			}
		}

		c.Locals(LocalUsuarioID, claims.UsuarioID)
		c.Locals(LocalJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(LocalTokenExp, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

// RefreshMiddleware valida el refresh token del body ({"refreshToken": ...}) o de la cookie
// y deja el id de usuario y el tiempo restante del token en Locals. denylist puede ser nil.
func RefreshMiddleware(verifier TokenVerifier, denylist RevocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractRefreshToken(c)
		if tokenString == "" {
			return respondFail(c, fiber.StatusUnauthorized, MsgTokenMissing)
		}

		claims, err := verifier.VerifyRefresh(tokenString)
		if err != nil {
			return respondTokenError(c, err)
		}
		if denylist != nil && claims.ID != "" {
			revoked, err := denylist.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return respondError(c, err)
			}
			if revoked {
				return respondFail(c, fiber.StatusUnauthorized, MsgTokenRevoked)
			}
		}
		c.Locals(LocalUsuarioID, claims.UsuarioID)
		c.Locals(LocalRefreshRestante, verifier.Remaining(claims))
		return c.Next()
	}
}

// RefreshDeSesion para logout: si el cliente presenta un refresh token válido del mismo
// usuario deja su jti y expiración en Locals. Nunca corta la petición.
func RefreshDeSesion(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractRefreshToken(c)
		if tokenString == "" {
			return c.Next()
		}
		claims, err := verifier.VerifyRefresh(tokenString)
		if err != nil || claims.UsuarioID != GetUsuarioID(c) {
			return c.Next()
		}
		c.Locals(LocalRefreshJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(LocalRefreshExp, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

func extractRefreshToken(c *fiber.Ctx) string {
	if len(c.Body()) > 0 {
		var in struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.BodyParser(&in); err == nil && strings.TrimSpace(in.RefreshToken) != "" {
			return strings.TrimSpace(in.RefreshToken)
		}
	}
	return c.Cookies(CookieRefresh)
}

func extractAccessToken(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	return c.Cookies(CookieToken)
}

func respondTokenError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return respondFail(c, fiber.StatusUnauthorized, MsgTokenExpired)
	}
	return respondFail(c, fiber.StatusUnauthorized, MsgTokenInvalid)
}

// GetUsuarioID id del usuario autenticado; 0 si la ruta no pasó por AuthMiddleware.
func GetUsuarioID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUsuarioID).(int64)
	return id
}

// GetJTI jti del access token actual.
func GetJTI(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalJTI).(string)
	return s
}

// GetTokenExp expiración del access token actual.
func GetTokenExp(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocalTokenExp).(time.Time)
	return t
}

// GetRefreshJTI jti del refresh token presentado en logout.
func GetRefreshJTI(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRefreshJTI).(string)
	return s
}

// GetRefreshExp expiración del refresh token presentado en logout.
func GetRefreshExp(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocalRefreshExp).(time.Time)
	return t
}

// GetRefreshRestante tiempo de vida que le queda al refresh token presentado.
func GetRefreshRestante(c *fiber.Ctx) time.Duration {
	d, _ := c.Locals(LocalRefreshRestante).(time.Duration)
	return d
}
