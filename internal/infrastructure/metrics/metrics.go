package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Valores de la etiqueta "resultado".
const (
	ResultadoOK           = "ok"
	ResultadoNoRegistrado = "no_registrado"
	ResultadoContrasena   = "contrasena_invalida"
	ResultadoInactivo     = "inactivo"
	ResultadoError        = "error"
	ResultadoPermitido    = "permitido"
	ResultadoDenegado     = "denegado"
	ResultadoHit          = "hit"
	ResultadoMiss         = "miss"
)

// Metrics contadores del subsistema de autenticación sobre un registry propio.
// Todos los métodos aceptan receptor nil (sin métricas).
type Metrics struct {
	registry       *prometheus.Registry
	loginTotal     *prometheus.CounterVec
	authorizeTotal *prometheus.CounterVec
	permCacheTotal *prometheus.CounterVec
}

// New crea el registry con los colectores de proceso y Go más los contadores de auth.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		loginTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vet_auth_login_total",
			Help: "Intentos de login por resultado.",
		}, []string{"resultado"}),
		authorizeTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vet_authorize_total",
			Help: "Decisiones del middleware Authorize por resultado.",
		}, []string{"resultado"}),
		permCacheTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vet_permission_cache_total",
			Help: "Consultas a la caché de permisos (hit/miss).",
		}, []string{"resultado"}),
	}
}

func (m *Metrics) Login(resultado string) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues(resultado).Inc()
}

func (m *Metrics) Authorize(permitido bool) {
	if m == nil {
		return
	}
	r := ResultadoDenegado
	if permitido {
		r = ResultadoPermitido
	}
	m.authorizeTotal.WithLabelValues(r).Inc()
}

func (m *Metrics) PermissionCache(hit bool) {
	if m == nil {
		return
	}
	r := ResultadoMiss
	if hit {
		r = ResultadoHit
	}
	m.permCacheTotal.WithLabelValues(r).Inc()
}

// Registry expone el registry (tests y colectores adicionales).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler handler HTTP de /metrics; en fiber se monta con adaptor.HTTPHandler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
