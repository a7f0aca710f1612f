package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/veterinaria-api/internal/application/auth"
	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router. Denylist y Metrics son opcionales.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	CredencialUC   *usecase.CredencialUseCase
	RolUC          *usecase.RolUseCase
	PermisoUC      *usecase.PermisoUseCase
	AsignacionUC   *usecase.AsignacionUseCase
	Tokens         TokenVerifier
	Permisos       PermissionChecker
	Denylist       RevocationChecker
	Metrics        *metrics.Metrics
	Cookies        CookieConfig
	LoginRateLimit int // peticiones por minuto por IP; <= 0 sin límite
	AppName        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")
	authn := AuthMiddleware(deps.Tokens, deps.Denylist)
	authz := NewAuthorizer(deps.Permisos, deps.Metrics)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookies)
	loginChain := []fiber.Handler{}
	if deps.LoginRateLimit > 0 {
		loginChain = append(loginChain, loginLimiter(deps.LoginRateLimit))
	}
	loginChain = append(loginChain, ValidarCuerpo[dto.LoginRequest](), authHandler.Login)
	authGroup.Post("/login", loginChain...)
	authGroup.Post("/register", ValidarCuerpo[dto.RegisterRequest](), authHandler.Register)
	authGroup.Post("/refresh", RefreshMiddleware(deps.Tokens, deps.Denylist), authHandler.Refresh)
	authGroup.Post("/logout", authn, RefreshDeSesion(deps.Tokens), authHandler.Logout)
	authGroup.Get("/me", authn, authHandler.Me)
	authGroup.Put("/password", authn, ValidarCuerpo[dto.ChangePasswordRequest](), authHandler.ChangePassword)

	// Usuarios y sus roles
	usuarios := api.Group("/usuarios", authn)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.AsignacionUC)
	usuarios.Get("/", authz.Require(entity.PermUsuarioRead), usuarioHandler.List)
	usuarios.Get("/:id", authz.Require(entity.PermUsuarioRead), usuarioHandler.GetByID)
	usuarios.Put("/:id", authz.Require(entity.PermUsuarioUpdate), ValidarCuerpo[dto.UpdateUsuarioRequest](), usuarioHandler.Update)
	usuarios.Delete("/:id", authz.Require(entity.PermUsuarioDelete), usuarioHandler.Delete)
	usuarios.Get("/:id/roles", authz.Require(entity.PermUsuarioRead, entity.PermRolRead), usuarioHandler.ListRoles)
	usuarios.Post("/:id/roles", authz.Require(entity.PermUsuarioUpdate), ValidarCuerpo[dto.AsignarRolRequest](), usuarioHandler.AsignarRol)
	usuarios.Delete("/:id/roles/:asignacionId", authz.Require(entity.PermUsuarioUpdate), usuarioHandler.QuitarRol)

	// Credenciales
	credenciales := api.Group("/credenciales", authn)
	credencialHandler := NewCredencialHandler(deps.CredencialUC)
	credenciales.Post("/", authz.Require(entity.PermCredencialCreate), ValidarCuerpo[dto.CreateCredencialRequest](), credencialHandler.Create)
	credenciales.Get("/:id", authz.Require(entity.PermCredencialRead), credencialHandler.GetByID)
	credenciales.Put("/:id", authz.Require(entity.PermCredencialUpd), ValidarCuerpo[dto.UpdateCredencialRequest](), credencialHandler.Update)
	credenciales.Delete("/:id", authz.Require(entity.PermCredencialDel), credencialHandler.Delete)

	// Roles y sus permisos
	roles := api.Group("/roles", authn)
	rolHandler := NewRolHandler(deps.RolUC, deps.AsignacionUC)
	roles.Get("/", authz.Require(entity.PermRolRead), rolHandler.List)
	roles.Get("/:id", authz.Require(entity.PermRolRead), rolHandler.GetByID)
	roles.Post("/", authz.Require(entity.PermRolCreate), ValidarCuerpo[dto.RolRequest](), rolHandler.Create)
	roles.Put("/:id", authz.Require(entity.PermRolUpdate), ValidarCuerpo[dto.RolRequest](), rolHandler.Update)
	roles.Delete("/:id", authz.Require(entity.PermRolDelete), rolHandler.Delete)
	roles.Get("/:id/permisos", authz.Require(entity.PermRolRead), rolHandler.ListPermisos)
	roles.Post("/:id/permisos", authz.Require(entity.PermRolUpdate), ValidarCuerpo[dto.AsignarPermisoRequest](), rolHandler.AsignarPermiso)
	roles.Delete("/:id/permisos/:asignacionId", authz.Require(entity.PermRolUpdate), rolHandler.QuitarPermiso)

	// Permisos
	permisos := api.Group("/permisos", authn)
	permisoHandler := NewPermisoHandler(deps.PermisoUC)
	permisos.Get("/", authz.Require(entity.PermPermisoRead), permisoHandler.List)
	permisos.Get("/:id", authz.Require(entity.PermPermisoRead), permisoHandler.GetByID)
	permisos.Post("/", authz.Require(entity.PermPermisoCreate), ValidarCuerpo[dto.PermisoRequest](), permisoHandler.Create)
	permisos.Put("/:id", authz.Require(entity.PermPermisoUpdate), ValidarCuerpo[dto.PermisoRequest](), permisoHandler.Update)
	permisos.Delete("/:id", authz.Require(entity.PermPermisoDelete), permisoHandler.Delete)
}

// loginLimiter limita intentos de login por IP; el 429 sale con la forma uniforme.
func loginLimiter(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return respondFail(c, fiber.StatusTooManyRequests, "demasiados intentos de login, intente más tarde")
		},
	})
}
