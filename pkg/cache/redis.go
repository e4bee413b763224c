package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"studymentor/internal/models"
)

// RedisCache is a read-through cache for materials. Materials never change
// after upload, so entries are written once and left to expire.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

func (c *RedisCache) SetMaterial(material *models.Material) error {
	data, err := json.Marshal(material)
	if err != nil {
		return err
	}

	key := "material:" + material.ID
	return c.client.Set(c.ctx, key, data, 24*time.Hour).Err()
}

func (c *RedisCache) GetMaterial(id string) (*models.Material, error) {
	key := "material:" + id
	data, err := c.client.Get(c.ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var material models.Material
	err = json.Unmarshal(data, &material)
	return &material, err
}

// Close releases the redis connection on shutdown.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
