package session

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"SESSION_TTL" default:"336h"`
}

func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	return rdb, nil
}

// Counter keeps the per-session home page visit count in redis.
// A session starts at 0 and expires ttl after its last visit.
type Counter struct {
	rdb redis.Cmdable
	ttl time.Duration
	log *zap.Logger
}

func NewCounter(rdb redis.Cmdable, ttl time.Duration, log *zap.Logger) *Counter {
	return &Counter{
		rdb: rdb,
		ttl: ttl,
		log: log.Named("session"),
	}
}

func key(sessionID string) string {
	return fmt.Sprintf("catalog:session:%s:num_visits", sessionID)
}

// Visit increments the counter and returns the value it had before.
func (c *Counter) Visit(ctx context.Context, sessionID string) (int, error) {
	if sessionID == "" {
		return 0, errors.New("empty session id")
	}
	k := key(sessionID)

	var incr *redis.IntCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, c.ttl)
		return nil
	})
	if err != nil {
		c.log.Error("Visit", zap.String("key", k), zap.Error(err))
		return 0, errors.Wrap(err, "redis incr")
	}
	return int(incr.Val()) - 1, nil
}
