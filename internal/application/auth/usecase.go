package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
	"github.com/jhoicas/veterinaria-api/internal/infrastructure/metrics"
	"github.com/jhoicas/veterinaria-api/pkg/password"
)

// TokenIssuer lo cumple *jwt.Issuer.
type TokenIssuer interface {
	IssueAccess(usuarioID int64) (string, error)
	IssueRefresh(usuarioID int64) (string, error)
}

// TokenDenylist revocación opcional de tokens en logout.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type loginRecorder interface {
	Login(resultado string)
}

// Deps dependencias del caso de uso; Denylist y Metrics son opcionales.
type Deps struct {
	Credenciales     repository.CredencialRepository
	Usuarios         repository.UsuarioRepository
	Tx               repository.TxRunner
	Resolver         *PermissionResolver
	Hasher           password.Hasher
	Tokens           TokenIssuer
	RefreshThreshold time.Duration
	Denylist         TokenDenylist
	Metrics          loginRecorder
	Log              zerolog.Logger
}

// AuthUseCase ciclo de sesión: login, refresh y logout, más registro y perfil.
type AuthUseCase struct {
	credenciales repository.CredencialRepository
	usuarios     repository.UsuarioRepository
	tx           repository.TxRunner
	resolver     *PermissionResolver
	hasher       password.Hasher
	tokens       TokenIssuer
	threshold    time.Duration
	denylist     TokenDenylist
	metrics      loginRecorder
	log          zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(d Deps) *AuthUseCase {
	return &AuthUseCase{
		credenciales: d.Credenciales,
		usuarios:     d.Usuarios,
		tx:           d.Tx,
		resolver:     d.Resolver,
		hasher:       d.Hasher,
		tokens:       d.Tokens,
		threshold:    d.RefreshThreshold,
		denylist:     d.Denylist,
		metrics:      d.Metrics,
		log:          d.Log,
	}
}

func (uc *AuthUseCase) observeLogin(resultado string) {
	if uc.metrics != nil {
		uc.metrics.Login(resultado)
	}
}

// Login verifica handle y contraseña, resuelve permisos y emite ambos tokens.
// Handle desconocido: ErrNotRegistered. Contraseña errónea: ErrInvalidPassword.
// Cuenta inactiva: ErrAccountDisabled. No se emite ningún token en esos casos.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	handle := entity.NormalizarUsuario(in.Usuario)

	cred, err := uc.credenciales.GetByUsuario(ctx, handle)
	if err != nil {
		uc.observeLogin(metrics.ResultadoError)
		return nil, fmt.Errorf("buscar credencial: %w", err)
	}
	if cred == nil {
		uc.hasher.CompareDummy(in.Contrasena)
		uc.observeLogin(metrics.ResultadoNoRegistrado)
		return nil, domain.ErrNotRegistered
	}
	if !uc.hasher.Check(in.Contrasena, cred.Contrasena) {
		uc.observeLogin(metrics.ResultadoContrasena)
		return nil, domain.ErrInvalidPassword
	}
	if !cred.Activo {
		uc.observeLogin(metrics.ResultadoInactivo)
		return nil, domain.ErrAccountDisabled
	}

	perfil, err := uc.perfil(ctx, cred, true)
	if err != nil {
		uc.observeLogin(metrics.ResultadoError)
		return nil, err
	}

	access, err := uc.tokens.IssueAccess(cred.UsuarioID)
	if err != nil {
		uc.observeLogin(metrics.ResultadoError)
		return nil, fmt.Errorf("emitir access token: %w", err)
	}
	refresh, err := uc.tokens.IssueRefresh(cred.UsuarioID)
	if err != nil {
		uc.observeLogin(metrics.ResultadoError)
		return nil, fmt.Errorf("emitir refresh token: %w", err)
	}

	uc.observeLogin(metrics.ResultadoOK)
	uc.log.Info().Int64("usuario_id", cred.UsuarioID).Msg("login correcto")
	return &dto.LoginResponse{
		Token:         access,
		RefreshToken:  refresh,
		UsuarioCookie: *perfil,
	}, nil
}

// Refresh emite siempre un access token nuevo. El refresh token solo rota cuando
// al actual le queda menos que el umbral; si no, RefreshToken vuelve nil.
// El llamador ya verificó firma y expiración del refresh token.
func (uc *AuthUseCase) Refresh(ctx context.Context, usuarioID int64, timeLeft time.Duration) (*dto.RefreshResponse, error) {
	if usuarioID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	access, err := uc.tokens.IssueAccess(usuarioID)
	if err != nil {
		return nil, fmt.Errorf("emitir access token: %w", err)
	}
	resp := &dto.RefreshResponse{Token: access}
	if timeLeft < uc.threshold {
		refresh, err := uc.tokens.IssueRefresh(usuarioID)
		if err != nil {
			return nil, fmt.Errorf("emitir refresh token: %w", err)
		}
		resp.RefreshToken = &refresh
	}
	return resp, nil
}

// Logout es un acuse. Con denylist configurada además revoca el jti del access token
// y, si vino, el del refresh token, cada uno hasta su expiración natural.
func (uc *AuthUseCase) Logout(ctx context.Context, in dto.LogoutRequest) error {
	if uc.denylist == nil {
		return nil
	}
	if in.JTI != "" {
		if err := uc.denylist.Revoke(ctx, in.JTI, time.Until(in.ExpiresAt)); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
	}
	if in.RefreshJTI != "" {
		if err := uc.denylist.Revoke(ctx, in.RefreshJTI, time.Until(in.RefreshExpiresAt)); err != nil {
			return fmt.Errorf("logout refresh: %w", err)
		}
	}
	return nil
}

// Register crea Usuario y Credencial en una misma transacción.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	handle := entity.NormalizarUsuario(in.Usuario)
	if handle == "" {
		return nil, fmt.Errorf("%w: usuario vacío", domain.ErrInvalidInput)
	}
	hash, err := uc.hasher.Hash(in.Contrasena)
	if err != nil {
		return nil, err
	}

	usuario := &entity.Usuario{
		TipoDocumento:   in.TipoDocumento,
		NumeroDocumento: in.NumeroDocumento,
		Nombre:          in.Nombre,
		Telefono:        in.Telefono,
		Direccion:       in.Direccion,
		Email:           in.Email,
	}
	cred := &entity.Credencial{Usuario: handle, Contrasena: hash, Activo: true}

	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		existente, err := r.Credenciales.GetByUsuario(ctx, handle)
		if err != nil {
			return err
		}
		if existente != nil {
			return fmt.Errorf("%w: el usuario %q ya existe", domain.ErrDuplicate, handle)
		}
		doc, err := r.Usuarios.GetByDocumento(ctx, in.NumeroDocumento)
		if err != nil {
			return err
		}
		if doc != nil {
			return fmt.Errorf("%w: documento ya registrado", domain.ErrDuplicate)
		}
		if err := r.Usuarios.Create(ctx, usuario); err != nil {
			return err
		}
		cred.UsuarioID = usuario.ID
		return r.Credenciales.Create(ctx, cred)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("usuario_id", usuario.ID).Msg("usuario registrado")
	return &dto.RegisterResponse{
		Usuario:    dto.NewUsuarioResponse(usuario),
		Credencial: dto.NewCredencialResponse(cred),
	}, nil
}

// Me perfil del usuario autenticado (usa la caché de permisos si existe).
func (uc *AuthUseCase) Me(ctx context.Context, usuarioID int64) (*dto.UsuarioCookie, error) {
	cred, err := uc.credenciales.GetByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("buscar credencial: %w", err)
	}
	if cred == nil {
		return nil, domain.ErrNotFound
	}
	return uc.perfil(ctx, cred, false)
}

// ChangePassword cambia la propia contraseña verificando la actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, usuarioID int64, in dto.ChangePasswordRequest) error {
	cred, err := uc.credenciales.GetByUsuarioID(ctx, usuarioID)
	if err != nil {
		return fmt.Errorf("buscar credencial: %w", err)
	}
	if cred == nil {
		return domain.ErrNotFound
	}
	if !uc.hasher.Check(in.ContrasenaActual, cred.Contrasena) {
		return domain.ErrInvalidPassword
	}
	hash, err := uc.hasher.Hash(in.ContrasenaNueva)
	if err != nil {
		return err
	}
	cred.Contrasena = hash
	return uc.credenciales.Update(ctx, cred)
}

// perfil arma el UsuarioCookie proyectando solo campos no secretos.
func (uc *AuthUseCase) perfil(ctx context.Context, cred *entity.Credencial, fresh bool) (*dto.UsuarioCookie, error) {
	usuario, err := uc.usuarios.GetByID(ctx, cred.UsuarioID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if usuario == nil {
		return nil, fmt.Errorf("%w: usuario %d de la credencial %d", domain.ErrNotFound, cred.UsuarioID, cred.ID)
	}

	var res *Resolucion
	if fresh {
		res, err = uc.resolver.ResolveFresh(ctx, cred.UsuarioID)
	} else {
		res, err = uc.resolver.Resolve(ctx, cred.UsuarioID)
	}
	if err != nil {
		return nil, err
	}

	return &dto.UsuarioCookie{
		Usuario:    dto.NewUsuarioResponse(usuario),
		Credencial: dto.NewCredencialResponse(cred),
		Roles:      res.Roles,
		Permisos:   res.Lista(),
	}, nil
}
