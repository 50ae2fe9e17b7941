package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache Redis缓存封装
// 用于公司设置的读穿缓存，更新时由服务层主动失效
type Cache struct {
	client *redis.Client
	prefix string
}

// Config Redis配置
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// NewCache 创建缓存实例
func NewCache(config *Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	prefix := config.Prefix
	if prefix == "" {
		prefix = "lawdesk:cache"
	}

	return &Cache{
		client: client,
		prefix: prefix,
	}
}

// Close 关闭Redis连接
func (c *Cache) Close() error {
	return c.client.Close()
}

// Ping 测试Redis连接
func (c *Cache) Ping() error {
	ctx := context.Background()
	return c.client.Ping(ctx).Err()
}

func (c *Cache) key(key string) string {
	return c.prefix + ":" + key
}

// Get 读取缓存值，未命中返回 redis.Nil
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, c.key(key)).Result()
}

// Set 写入缓存值
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(key), value, ttl).Err()
}

// Delete 删除缓存键（设置更新后失效）
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, c.key(k))
	}
	return c.client.Del(ctx, full...).Err()
}

// IsMiss 判断是否为未命中错误
func IsMiss(err error) bool {
	return err == redis.Nil
}
