package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/slicycode/file-drive/config"
	"github.com/slicycode/file-drive/models"

	"github.com/redis/go-redis/v9"
)

type RedisPrincipalCacheRepository struct {
	redis *redis.Client
}

func NewRedisPrincipalCacheRepository(redisClient *redis.Client) *RedisPrincipalCacheRepository {
	return &RedisPrincipalCacheRepository{redis: redisClient}
}

func principalKey(token string) string {
	return fmt.Sprintf("principal:%s", token)
}

func (r *RedisPrincipalCacheRepository) Get(ctx context.Context, token string) (models.User, bool, error) {
	data, err := r.redis.Get(ctx, principalKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		// Stale or corrupt entry; drop it and fall back to the store.
		_ = r.redis.Del(ctx, principalKey(token)).Err()
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (r *RedisPrincipalCacheRepository) Set(ctx context.Context, token string, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	ttl := time.Duration(config.AppConfig.Redis.PrincipalCacheTTL) * time.Second
	return r.redis.Set(ctx, principalKey(token), data, ttl).Err()
}

func (r *RedisPrincipalCacheRepository) Invalidate(ctx context.Context, token string) error {
	return r.redis.Del(ctx, principalKey(token)).Err()
}
