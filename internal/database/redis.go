package database

import (
	"sync"

	"lawdesk/pkg/cache"
	"lawdesk/pkg/config"
)

var (
	cacheInstance *cache.Cache
	cacheOnce     sync.Once
)

// GetCache 获取Redis缓存的单例实例
func GetCache() *cache.Cache {
	cacheOnce.Do(func() {
		cfg := config.GetConfig()
		cacheInstance = cache.NewCache(&cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	})
	return cacheInstance
}

// CloseCache 关闭Redis连接
func CloseCache() error {
	if cacheInstance != nil {
		return cacheInstance.Close()
	}
	return nil
}
