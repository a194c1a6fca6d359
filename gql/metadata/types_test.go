package metadata

import (
	"testing"

	"github.com/ichaly/gqlcf/gql/internal"
	"github.com/stretchr/testify/assert"
)

// hoster 测试用的元数据承载者
type hoster struct {
	entities map[string][]*internal.CustomField
}

func newHoster() *hoster {
	return &hoster{entities: map[string][]*internal.CustomField{}}
}

func (my *hoster) PutEntity(name string, fields []*internal.CustomField) {
	my.entities[name] = fields
}

func (my *hoster) GetEntity(name string) ([]*internal.CustomField, bool) {
	fields, ok := my.entities[name]
	return fields, ok
}

func newConfig(root string) *internal.Config {
	cfg := &internal.Config{}
	cfg.Root = root
	cfg.Mode = "dev"
	return cfg
}

func TestSanitize(t *testing.T) {
	fields := []*internal.CustomField{
		{Name: "custom1", Type: internal.KindString},
		nil,
		{Name: "", Type: internal.KindString},
		{Name: "bad", Type: "struct"},
		{Name: "avatar", Type: internal.KindRelation},
		{Name: "custom1", Type: internal.KindInt},
		{Name: "custom2", Type: internal.KindBoolean, Readonly: true},
	}

	result := Sanitize("Product", fields)
	if assert.Len(t, result, 2) {
		assert.Equal(t, "custom1", result[0].Name)
		assert.Equal(t, internal.KindString, result[0].Type)
		assert.Equal(t, "custom2", result[1].Name)
	}
}
