package std

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c, err := NewCache(&Config{})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("未命中", func(t *testing.T) {
		_, ok := c.Get(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("写入后读取", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "doc", "{ product { id } }"))
		val, ok := c.Get(ctx, "doc")
		assert.True(t, ok)
		assert.Equal(t, "{ product { id } }", val)
	})

	t.Run("删除", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "gone", "x"))
		require.NoError(t, c.Delete(ctx, "gone"))
		_, ok := c.Get(ctx, "gone")
		assert.False(t, ok)
	})
}

func TestCacheConfig(t *testing.T) {
	c, err := NewCache(&Config{AppConfig: appConfig(&DataSource{Dialect: "memory", Expire: time.Minute})})
	require.NoError(t, err)
	assert.Equal(t, time.Minute, c.exp)

	_, err = NewCache(&Config{AppConfig: appConfig(&DataSource{Dialect: "memcached"})})
	assert.Error(t, err, "不支持的缓存类型应返回错误")
}
