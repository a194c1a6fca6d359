package metadata

import (
	"context"
	"testing"

	"github.com/ichaly/gqlcf/gql/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader(t *testing.T) {
	cfg := newConfig(t.TempDir())
	loader := NewConfigLoader(cfg)
	assert.False(t, loader.Support(), "未声明实体时不应加载")

	cfg.Metadata.Entities = map[string][]*internal.CustomField{
		"Product": {
			{Name: "weight", Type: internal.KindFloat, Readonly: true},
			{Name: "rating", Type: internal.KindInt},
		},
	}
	require.True(t, loader.Support())

	h := newHoster()
	h.PutEntity("Product", []*internal.CustomField{{Name: "old", Type: internal.KindString}})
	require.NoError(t, loader.Load(context.Background(), h))

	fields, ok := h.GetEntity("Product")
	require.True(t, ok)
	require.Len(t, fields, 2, "配置应整体覆盖已加载的实体")
	assert.Equal(t, "weight", fields[0].Name)

	fields[0].Name = "changed"
	assert.Equal(t, "weight", cfg.Metadata.Entities["Product"][0].Name, "加载结果不应与配置共享")
}
