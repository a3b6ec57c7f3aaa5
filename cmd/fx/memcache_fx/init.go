package memcache_fx

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"itinera/internal/config"
	"itinera/internal/infra"
	mem "itinera/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

// provideSessionStore uses Redis when REDIS_ADDR is set, process memory otherwise.
func provideSessionStore(lc fx.Lifecycle, cfg *config.Config) (mem.SessionStore, error) {
	if cfg.RedisAddr == "" {
		log.Info().Dur("ttl", cfg.SessionTTL).Msg("Using in-memory chat sessions")
		return mem.NewMemorySessions(cfg.SessionTTL), nil
	}

	client, err := infra.InitRedis(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return infra.NewRedisSessions(client, cfg.SessionTTL), nil
}
