package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	iss, err := NewIssuer(Config{
		AccessSecret:  "access-secret-test",
		RefreshSecret: "refresh-secret-test",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "veterinaria-test",
	})
	require.NoError(t, err)
	return iss
}

func TestNewIssuer_RechazaSecretosIguales(t *testing.T) {
	_, err := NewIssuer(Config{AccessSecret: "x", RefreshSecret: "x", AccessTTL: time.Minute, RefreshTTL: time.Hour})
	assert.Error(t, err)
}

func TestNewIssuer_RechazaSecretoVacio(t *testing.T) {
	_, err := NewIssuer(Config{AccessSecret: "", RefreshSecret: "x", AccessTTL: time.Minute, RefreshTTL: time.Hour})
	assert.Error(t, err)
}

func TestIssueAccess_VerificaYDevuelveID(t *testing.T) {
	iss := newTestIssuer(t)

	tok, err := iss.IssueAccess(7)
	require.NoError(t, err)

	claims, err := iss.VerifyAccess(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UsuarioID)
	assert.Equal(t, KindAccess, claims.Tipo)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "veterinaria-test", claims.Issuer)
}

func TestAccessYRefresh_SonDistintos(t *testing.T) {
	iss := newTestIssuer(t)

	access, err := iss.IssueAccess(7)
	require.NoError(t, err)
	refresh, err := iss.IssueRefresh(7)
	require.NoError(t, err)

	assert.NotEqual(t, access, refresh)
}

func TestVerify_RefreshComoAccessEsInvalido(t *testing.T) {
	iss := newTestIssuer(t)

	refresh, err := iss.IssueRefresh(7)
	require.NoError(t, err)

	_, err = iss.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.False(t, errors.Is(err, ErrTokenExpired))
}

func TestVerify_AccessComoRefreshEsInvalido(t *testing.T) {
	iss := newTestIssuer(t)

	access, err := iss.IssueAccess(7)
	require.NoError(t, err)

	_, err = iss.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_TokenExpirado(t *testing.T) {
	iss := newTestIssuer(t)
	base := time.Now()
	iss.now = func() time.Time { return base.Add(-time.Hour) }

	tok, err := iss.IssueAccess(7)
	require.NoError(t, err)

	iss.now = func() time.Time { return base }
	_, err = iss.VerifyAccess(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.False(t, errors.Is(err, ErrTokenInvalid))
}

func TestVerify_FirmaDeOtroEmisor(t *testing.T) {
	iss := newTestIssuer(t)
	otro, err := NewIssuer(Config{
		AccessSecret:  "otro-access",
		RefreshSecret: "otro-refresh",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	})
	require.NoError(t, err)

	tok, err := otro.IssueAccess(7)
	require.NoError(t, err)

	_, err = iss.VerifyAccess(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Basura(t *testing.T) {
	iss := newTestIssuer(t)
	_, err := iss.VerifyAccess("no.es.un.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRemaining(t *testing.T) {
	iss := newTestIssuer(t)
	base := time.Now()
	iss.now = func() time.Time { return base }

	tok, err := iss.IssueRefresh(3)
	require.NoError(t, err)
	claims, err := iss.VerifyRefresh(tok)
	require.NoError(t, err)

	iss.now = func() time.Time { return base.Add(6 * 24 * time.Hour) }
	left := iss.Remaining(claims)
	assert.InDelta(t, float64(24*time.Hour), float64(left), float64(2*time.Second))
}

func TestIssue_IDInvalido(t *testing.T) {
	iss := newTestIssuer(t)
	_, err := iss.IssueAccess(0)
	assert.Error(t, err)
}
