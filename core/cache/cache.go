package cache

import (
	"context"
	"encoding/json"
	"time"

	"playzio-api/core/config"
	"playzio-api/core/constants"
	"playzio-api/core/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache holds the relationship lookups the visibility filter consumes on
// every slot listing: a user's friend usernames and group ids.
type Cache interface {
	GetFriends(ctx context.Context, userID uuid.UUID) ([]string, bool)
	SetFriends(ctx context.Context, userID uuid.UUID, friends []string) error
	GetGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, bool)
	SetGroupIDs(ctx context.Context, userID uuid.UUID, groupIDs []uuid.UUID) error
	// InvalidateUser drops both cached sets after a friendship or
	// membership mutation.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
	Close() error
}

type redisCache struct {
	client *redis.Client
}

// New connects to redis using the loaded config.
func New(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisCache{client: client}, nil
}

func (c *redisCache) GetFriends(ctx context.Context, userID uuid.UUID) ([]string, bool) {
	raw, err := c.client.Get(ctx, constants.RedisKeyFriends+userID.String()).Bytes()
	if err != nil {
		return nil, false
	}
	var friends []string
	if err := json.Unmarshal(raw, &friends); err != nil {
		return nil, false
	}
	return friends, true
}

func (c *redisCache) SetFriends(ctx context.Context, userID uuid.UUID, friends []string) error {
	raw, err := json.Marshal(friends)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, constants.RedisKeyFriends+userID.String(), raw, constants.RelationCacheTTL).Err()
}

func (c *redisCache) GetGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, bool) {
	raw, err := c.client.Get(ctx, constants.RedisKeyGroupIDs+userID.String()).Bytes()
	if err != nil {
		return nil, false
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false
	}
	return ids, true
}

func (c *redisCache) SetGroupIDs(ctx context.Context, userID uuid.UUID, groupIDs []uuid.UUID) error {
	raw, err := json.Marshal(groupIDs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, constants.RedisKeyGroupIDs+userID.String(), raw, constants.RelationCacheTTL).Err()
}

func (c *redisCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	err := c.client.Del(ctx,
		constants.RedisKeyFriends+userID.String(),
		constants.RedisKeyGroupIDs+userID.String(),
	).Err()
	if err != nil {
		logger.Error("Cache:InvalidateUser", "error", err, "user_id", userID)
	}
	return err
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
