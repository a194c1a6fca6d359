package gql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		name  string
		vars  map[string]any
		shape Shape
	}{
		{name: "实体", vars: map[string]any{"customFields": map[string]any{}}, shape: ShapeEntity},
		{name: "input对象", vars: map[string]any{"input": map[string]any{}}, shape: ShapeInput},
		{name: "input数组", vars: map[string]any{"input": []any{}}, shape: ShapeInputList},
		{name: "input对象数组", vars: map[string]any{"input": []map[string]any{{}}}, shape: ShapeInputList},
		{name: "input为标量", vars: map[string]any{"input": "x"}, shape: ShapeEntity},
		{name: "空变量", vars: nil, shape: ShapeEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shape, ShapeOf(tt.vars))
		})
	}
	assert.Equal(t, "input-list", ShapeInputList.String())
}

func TestEntities(t *testing.T) {
	a := map[string]any{"id": "a"}
	b := map[string]any{"id": "b"}

	assert.Nil(t, Entities(nil))
	assert.Equal(t, []map[string]any{a}, Entities(a))

	single := map[string]any{"input": a}
	assert.Equal(t, []map[string]any{single, a}, Entities(single))

	list := map[string]any{"input": []any{a, "skip", b}}
	assert.Equal(t, []map[string]any{list, a, b}, Entities(list))

	typed := map[string]any{"input": []map[string]any{a, b}}
	assert.Equal(t, []map[string]any{typed, a, b}, Entities(typed))

	empty := map[string]any{"input": map[string]any(nil)}
	assert.Equal(t, []map[string]any{empty}, Entities(empty))
}
