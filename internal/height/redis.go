package height

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"benefitd/pkg/domain"
	"benefitd/pkg/platform/sentinel"
)

// Getter is the slice of the go-redis API the Redis source needs.
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Redis reads the height a chain follower publishes under a key.
type Redis struct {
	client Getter
	key    string
}

func NewRedis(client Getter, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) Current(ctx context.Context) (domain.Height, error) {
	raw, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("height key %q not published: %w", r.key, sentinel.ErrUnavailable)
		}
		return 0, fmt.Errorf("read height: %w", err)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse height %q: %w", raw, err)
	}
	return domain.Height(v), nil
}
