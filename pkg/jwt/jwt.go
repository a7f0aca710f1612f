package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind distingue los dos tipos de token que emite la API.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Errores de verificación. El middleware usa ErrTokenExpired para pedir un refresh
// y ErrTokenInvalid para exigir un nuevo login.
var (
	ErrTokenExpired = errors.New("jwt: token expirado")
	ErrTokenInvalid = errors.New("jwt: token inválido")
)

// Claims payload del token: solo el id del usuario más los claims registrados.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID int64 `json:"id"`
	Tipo      Kind  `json:"tipo"`
}

// Config secretos y duraciones de ambos tipos de token.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// Issuer firma y verifica tokens HS256; cada tipo usa su propio secreto.
type Issuer struct {
	cfg Config
	now func() time.Time
}

// NewIssuer valida la configuración y construye el emisor.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, fmt.Errorf("jwt: access y refresh deben usar secretos distintos")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, fmt.Errorf("jwt: duración de token inválida")
	}
	return &Issuer{cfg: cfg, now: time.Now}, nil
}

// AccessTTL duración configurada del access token.
func (i *Issuer) AccessTTL() time.Duration { return i.cfg.AccessTTL }

// RefreshTTL duración configurada del refresh token.
func (i *Issuer) RefreshTTL() time.Duration { return i.cfg.RefreshTTL }

// IssueAccess genera un access token de corta duración para el usuario.
func (i *Issuer) IssueAccess(usuarioID int64) (string, error) {
	return i.issue(usuarioID, KindAccess)
}

// IssueRefresh genera un refresh token de larga duración para el usuario.
func (i *Issuer) IssueRefresh(usuarioID int64) (string, error) {
	return i.issue(usuarioID, KindRefresh)
}

// VerifyAccess verifica un access token con el secreto de access.
func (i *Issuer) VerifyAccess(token string) (*Claims, error) {
	return i.Verify(token, KindAccess)
}

// VerifyRefresh verifica un refresh token con el secreto de refresh.
func (i *Issuer) VerifyRefresh(token string) (*Claims, error) {
	return i.Verify(token, KindRefresh)
}

// Verify valida firma, expiración y tipo. Devuelve un error que envuelve
// ErrTokenExpired o ErrTokenInvalid.
func (i *Issuer) Verify(tokenString string, kind Kind) (*Claims, error) {
	secret, err := i.secret(kind)
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: claims inválidos", ErrTokenInvalid)
	}
	if claims.Tipo != kind {
		return nil, fmt.Errorf("%w: se esperaba token %s", ErrTokenInvalid, kind)
	}
	if claims.UsuarioID <= 0 {
		return nil, fmt.Errorf("%w: id de usuario ausente", ErrTokenInvalid)
	}
	return claims, nil
}

// Remaining tiempo de vida restante de un token ya verificado.
func (i *Issuer) Remaining(c *Claims) time.Duration {
	if c == nil || c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(i.now())
}

func (i *Issuer) issue(usuarioID int64, kind Kind) (string, error) {
	if usuarioID <= 0 {
		return "", fmt.Errorf("jwt: id de usuario inválido")
	}
	secret, err := i.secret(kind)
	if err != nil {
		return "", err
	}
	ttl := i.cfg.AccessTTL
	if kind == KindRefresh {
		ttl = i.cfg.RefreshTTL
	}
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.cfg.Issuer,
			Subject:   strconv.FormatInt(usuarioID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UsuarioID: usuarioID,
		Tipo:      kind,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (i *Issuer) secret(kind Kind) (string, error) {
	switch kind {
	case KindAccess:
		return i.cfg.AccessSecret, nil
	case KindRefresh:
		return i.cfg.RefreshSecret, nil
	default:
		return "", fmt.Errorf("%w: tipo de token desconocido %q", ErrTokenInvalid, kind)
	}
}
