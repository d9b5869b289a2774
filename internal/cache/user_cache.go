package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// UserCache keeps serialized users under "accounts:user:<id>".
// Cache errors are logged and treated as misses.
type UserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewUserCache(rdb *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{rdb: rdb, ttl: ttl}
}

func userKey(id uint) string {
	return fmt.Sprintf("accounts:user:%d", id)
}

func (c *UserCache) Get(ctx context.Context, id uint) (*models.User, bool) {
	b, err := c.rdb.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("user cache get:", err)
		}
		return nil, false
	}

	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		log.Println("user cache decode:", err)
		return nil, false
	}
	return &u, true
}

func (c *UserCache) Set(ctx context.Context, u *models.User) {
	b, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, userKey(u.ID), b, c.ttl).Err(); err != nil {
		log.Println("user cache set:", err)
	}
}

func (c *UserCache) Invalidate(ctx context.Context, id uint) {
	if err := c.rdb.Del(ctx, userKey(id)).Err(); err != nil {
		log.Println("user cache del:", err)
	}
}

var _ domain.UserCache = (*UserCache)(nil)
