package gql

import (
	"github.com/ichaly/gqlcf/gql/internal"
	"github.com/samber/lo"
)

type (
	FieldKind   = internal.FieldKind
	CustomField = internal.CustomField
)

const (
	KindString       = internal.KindString
	KindLocaleString = internal.KindLocaleString
	KindText         = internal.KindText
	KindLocaleText   = internal.KindLocaleText
	KindBoolean      = internal.KindBoolean
	KindInt          = internal.KindInt
	KindFloat        = internal.KindFloat
	KindDatetime     = internal.KindDatetime
	KindRelation     = internal.KindRelation
)

// CustomFields 实体名到自定义字段列表的映射，加载完成后只读
type CustomFields map[string][]*CustomField

// For 获取实体的自定义字段，处理实体别名
func (my CustomFields) For(entity string) []*CustomField {
	if alias, ok := entityAlias[entity]; ok {
		entity = alias
	}
	return my[entity]
}

// Readonly 获取实体的只读字段
func (my CustomFields) Readonly(entity string) []*CustomField {
	return lo.Filter(my.For(entity), func(f *CustomField, _ int) bool {
		return f.Readonly
	})
}

// Relations 获取实体的关联字段
func (my CustomFields) Relations(entity string) []*CustomField {
	return lo.Filter(my.For(entity), func(f *CustomField, _ int) bool {
		return f.IsRelation()
	})
}

// Entities 返回已配置字段的实体数量
func (my CustomFields) Entities() int {
	return len(lo.PickBy(my, func(_ string, v []*CustomField) bool {
		return len(v) > 0
	}))
}
