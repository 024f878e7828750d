package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/kiosk123/user-api/internal/api/metrics"
	"github.com/kiosk123/user-api/internal/core/domain"
	"github.com/kiosk123/user-api/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// CachedUserRepository is a read-through cache over a UserRepository.
// Single-user reads are served from Redis when possible; every mutation
// drops the cached entry. Cache failures are logged and degrade to the
// underlying store, never to the client.
type CachedUserRepository struct {
	next   ports.UserRepository
	client *redis.Client
	log    zerolog.Logger
}

func NewCachedUserRepository(next ports.UserRepository, client *redis.Client, log zerolog.Logger) *CachedUserRepository {
	return &CachedUserRepository{next: next, client: client, log: log}
}

func (r *CachedUserRepository) Save(ctx context.Context, u *domain.User) (int64, error) {
	return r.next.Save(ctx, u)
}

func (r *CachedUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	key := userKey(id)
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var u domain.User
		if err := json.Unmarshal(raw, &u); err == nil {
			metrics.CacheResultsTotal.WithLabelValues("hit").Inc()
			return &u, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn().Err(err).Int64("user_id", id).Msg("user cache read failed")
	}
	metrics.CacheResultsTotal.WithLabelValues("miss").Inc()

	u, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(u); err == nil {
		if err := r.client.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
			r.log.Warn().Err(err).Int64("user_id", id).Msg("user cache write failed")
		}
	}
	return u, nil
}

// FindAll bypasses the cache: list freshness matters more than the saved
// round trip, and invalidating a list key on every mutation is not worth it.
func (r *CachedUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	return r.next.FindAll(ctx)
}

func (r *CachedUserRepository) Update(ctx context.Context, u *domain.User) error {
	if err := r.next.Update(ctx, u); err != nil {
		return err
	}
	r.invalidate(ctx, u.ID)
	return nil
}

func (r *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedUserRepository) invalidate(ctx context.Context, id int64) {
	if err := r.client.Del(ctx, userKey(id)).Err(); err != nil {
		r.log.Warn().Err(err).Int64("user_id", id).Msg("user cache invalidation failed")
	}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}
