package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// hitRecorder lo cumple *metrics.Metrics.
type hitRecorder interface {
	PermissionCache(hit bool)
}

// TTLCache caché LRU con expiración indexada por id de usuario.
// Guarda permisos resueltos; los casos de uso de asignación la invalidan explícitamente.
type TTLCache[V any] struct {
	lru     *lru.LRU[int64, V]
	metrics hitRecorder
}

// NewTTLCache crea la caché; size <= 0 usa 1024 entradas.
func NewTTLCache[V any](size int, ttl time.Duration, metrics hitRecorder) *TTLCache[V] {
	if size <= 0 {
		size = 1024
	}
	return &TTLCache[V]{
		lru:     lru.NewLRU[int64, V](size, nil, ttl),
		metrics: metrics,
	}
}

func (c *TTLCache[V]) Get(usuarioID int64) (V, bool) {
	v, ok := c.lru.Get(usuarioID)
	if c.metrics != nil {
		c.metrics.PermissionCache(ok)
	}
	return v, ok
}

func (c *TTLCache[V]) Set(usuarioID int64, v V) {
	c.lru.Add(usuarioID, v)
}

// Invalidate descarta la entrada de un usuario (cambio en sus roles).
func (c *TTLCache[V]) Invalidate(usuarioID int64) {
	c.lru.Remove(usuarioID)
}

// Purge descarta todo (cambio en los permisos de un rol afecta a muchos usuarios).
func (c *TTLCache[V]) Purge() {
	c.lru.Purge()
}

func (c *TTLCache[V]) Len() int {
	return c.lru.Len()
}
