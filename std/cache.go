package std

import (
	"context"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	bigcache_store "github.com/eko/gocache/store/bigcache/v4"
	redis_store "github.com/eko/gocache/store/redis/v4"
	"github.com/ichaly/gqlcf/log"
	"github.com/redis/go-redis/v9"
)

const defaultExpire = 30 * time.Minute

// Cache 文本缓存，屏蔽不同存储返回值类型的差异
// 进程内存储返回[]byte，redis存储返回string
type Cache struct {
	c   *cache.Cache[any]
	exp time.Duration
}

// NewCache 根据app.cache配置创建缓存，未配置时使用进程内bigcache
func NewCache(c *Config) (*Cache, error) {
	ds := c.Cache
	if ds == nil {
		ds = &DataSource{Dialect: "memory"}
	}
	exp := ds.Expire
	if exp <= 0 {
		exp = defaultExpire
	}

	var s store.StoreInterface
	switch ds.Dialect {
	case "", "memory":
		client, err := bigcache.New(context.Background(), bigcache.DefaultConfig(exp))
		if err != nil {
			return nil, fmt.Errorf("创建内存缓存失败: %w", err)
		}
		s = bigcache_store.NewBigcache(client)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", ds.Host, ds.Port),
			Username: ds.Username,
			Password: ds.Password,
			DB:       ds.Name,
		})
		s = redis_store.NewRedis(client, store.WithExpiration(exp))
	default:
		return nil, fmt.Errorf("不支持的缓存类型: %s", ds.Dialect)
	}

	log.Info().Str("dialect", ds.Dialect).Dur("expire", exp).Msg("缓存已初始化")
	return &Cache{c: cache.New[any](s), exp: exp}, nil
}

// Get 读取缓存，未命中或出错时返回false
func (my *Cache) Get(ctx context.Context, key string) (string, bool) {
	val, err := my.c.Get(ctx, key)
	if err != nil {
		return "", false
	}
	switch v := val.(type) {
	case []byte:
		return string(v), true
	case string:
		return v, true
	}
	return "", false
}

// Set 写入缓存
func (my *Cache) Set(ctx context.Context, key, value string) error {
	return my.c.Set(ctx, key, []byte(value), store.WithExpiration(my.exp))
}

// Delete 删除缓存
func (my *Cache) Delete(ctx context.Context, key string) error {
	return my.c.Delete(ctx, key)
}
