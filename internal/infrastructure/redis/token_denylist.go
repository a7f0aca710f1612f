package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const denylistPrefix = "denylist:"

// NewClient abre la conexión a partir de REDIS_URL y verifica con un ping.
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolTimeout = 30 * time.Second
	opts.ConnMaxIdleTime = 5 * time.Minute

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// TokenDenylist jti de access tokens revocados por logout, con TTL igual a la vida restante del token.
type TokenDenylist struct {
	client goredis.UniversalClient
}

func NewTokenDenylist(client goredis.UniversalClient) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marca el jti como revocado hasta que el token expire por sí solo.
// Un ttl <= 0 no hace nada: el token ya no es válido.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denylistPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revocar token: %w", err)
	}
	return nil
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := d.client.Get(ctx, denylistPrefix+jti).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consultar denylist: %w", err)
	}
	return true, nil
}
