package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/veterinaria-api/internal/application/auth"
	"github.com/jhoicas/veterinaria-api/internal/application/dto"
)

// CookieConfig cómo se entregan los tokens en cookies HttpOnly.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthHandler maneja login, refresh, logout, registro y perfil propio.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	cookies CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookies: cookies}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, contrasena"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in := Cuerpo[dto.LoginRequest](c)
	out, err := h.uc.Login(c.UserContext(), *in)
	if err != nil {
		return respondError(c, err)
	}
	h.setCookie(c, CookieToken, out.Token, h.cookies.AccessTTL)
	h.setCookie(c, CookieRefresh, out.RefreshToken, h.cookies.RefreshTTL)
	return respondOK(c, fiber.StatusOK, "login correcto", out)
}

// Refresh godoc
// @Summary      Renovar access token
// @Description  refreshToken es null mientras al actual le quede más que el umbral configurado.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  false  "refreshToken (o cookie refreshToken)"
// @Success      200   {object}  dto.RefreshResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext(), GetUsuarioID(c), GetRefreshRestante(c))
	if err != nil {
		return respondError(c, err)
	}
	h.setCookie(c, CookieToken, out.Token, h.cookies.AccessTTL)
	if out.RefreshToken != nil {
		h.setCookie(c, CookieRefresh, *out.RefreshToken, h.cookies.RefreshTTL)
	}
	return respondOK(c, fiber.StatusOK, "token renovado", out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Con denylist activa revoca el access token y el refresh token (body o cookie) si pertenece al mismo usuario.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	err := h.uc.Logout(c.UserContext(), dto.LogoutRequest{
		JTI:              GetJTI(c),
		ExpiresAt:        GetTokenExp(c),
		RefreshJTI:       GetRefreshJTI(c),
		RefreshExpiresAt: GetRefreshExp(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	c.ClearCookie(CookieToken, CookieRefresh)
	return respondOK(c, fiber.StatusOK, "sesión cerrada", nil)
}

// Register godoc
// @Summary      Registrar usuario con credencial
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "datos de identidad y credencial"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	in := Cuerpo[dto.RegisterRequest](c)
	out, err := h.uc.Register(c.UserContext(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "usuario registrado", out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsuarioCookie
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUsuarioID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "perfil", out)
}

// ChangePassword godoc
// @Summary      Cambiar la propia contraseña
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "contraseña actual y nueva"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	in := Cuerpo[dto.ChangePasswordRequest](c)
	if err := h.uc.ChangePassword(c.UserContext(), GetUsuarioID(c), *in); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "contraseña actualizada", nil)
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
