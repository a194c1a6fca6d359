package gql

import (
	"github.com/huandu/go-clone"
	"github.com/ichaly/gqlcf/utl"
)

// Shape 变更变量的结构形态
type Shape int

const (
	// ShapeEntity 变量本身就是实体
	ShapeEntity Shape = iota
	// ShapeInput 变量形如 {input: entity}
	ShapeInput
	// ShapeInputList 变量形如 {input: [entity...]}
	ShapeInputList
)

func (my Shape) String() string {
	switch my {
	case ShapeInput:
		return "input"
	case ShapeInputList:
		return "input-list"
	default:
		return "entity"
	}
}

// ShapeOf 判断变量形态
func ShapeOf(vars map[string]any) Shape {
	switch vars[INPUT].(type) {
	case []any, []map[string]any:
		return ShapeInputList
	case map[string]any:
		return ShapeInput
	}
	return ShapeEntity
}

// Entities 将三种形态统一展开为实体列表，返回的实体与vars共享内存
// 变量容器本身总是作为第一个实体，input中的实体依次排在后面
func Entities(vars map[string]any) []map[string]any {
	if vars == nil {
		return nil
	}
	entities := []map[string]any{vars}
	switch ShapeOf(vars) {
	case ShapeInputList:
		list, _ := utl.AsSlice(vars[INPUT])
		for _, item := range list {
			if m, ok := utl.AsMap(item); ok {
				entities = append(entities, m)
			}
		}
	case ShapeInput:
		if m, ok := utl.AsMap(vars[INPUT]); ok {
			entities = append(entities, m)
		}
	}
	return entities
}

// copyVariables 深拷贝变量，避免修改调用方持有的数据
func copyVariables(vars map[string]any) map[string]any {
	if vars == nil {
		return nil
	}
	return clone.Clone(vars).(map[string]any)
}

// customFieldsOf 获取实体上的customFields对象
func customFieldsOf(entity map[string]any) (map[string]any, bool) {
	return utl.AsMap(entity[CUSTOM_FIELDS])
}
