package internal

import (
	"fmt"

	"github.com/samber/lo"
)

// FieldKind 自定义字段类型
type FieldKind string

const (
	KindString       FieldKind = "string"
	KindLocaleString FieldKind = "localeString"
	KindText         FieldKind = "text"
	KindLocaleText   FieldKind = "localeText"
	KindBoolean      FieldKind = "boolean"
	KindInt          FieldKind = "int"
	KindFloat        FieldKind = "float"
	KindDatetime     FieldKind = "datetime"
	KindRelation     FieldKind = "relation"
)

var kinds = []FieldKind{
	KindString, KindLocaleString, KindText, KindLocaleText,
	KindBoolean, KindInt, KindFloat, KindDatetime, KindRelation,
}

// Valid 判断是否为已知类型
func (my FieldKind) Valid() bool {
	return lo.Contains(kinds, my)
}

// CustomField 挂载在某个实体上的一个自定义字段
// Entity 和 ScalarFields 仅在 Type 为 relation 时有效
type CustomField struct {
	Name         string    `json:"name" mapstructure:"name"`
	Type         FieldKind `json:"type" mapstructure:"type"`
	List         bool      `json:"list,omitempty" mapstructure:"list"`
	Nullable     bool      `json:"nullable,omitempty" mapstructure:"nullable"`
	Readonly     bool      `json:"readonly,omitempty" mapstructure:"readonly"`
	Entity       string    `json:"entity,omitempty" mapstructure:"entity"`
	ScalarFields []string  `json:"scalarFields,omitempty" mapstructure:"scalarFields"`
}

// IsRelation 是否为关联字段
func (my *CustomField) IsRelation() bool {
	return my.Type == KindRelation
}

// IsLocaleString 是否为多语言短文本，此类字段只出现在translations中
func (my *CustomField) IsLocaleString() bool {
	return my.Type == KindLocaleString
}

// Validate 校验字段定义的完整性
func (my *CustomField) Validate() error {
	if my.Name == "" {
		return fmt.Errorf("自定义字段缺少名称")
	}
	if !my.Type.Valid() {
		return fmt.Errorf("自定义字段 %s 的类型 %q 无效", my.Name, my.Type)
	}
	if my.IsRelation() {
		if my.Entity == "" {
			return fmt.Errorf("关联字段 %s 缺少目标实体", my.Name)
		}
		if len(my.ScalarFields) == 0 {
			return fmt.Errorf("关联字段 %s 缺少scalarFields", my.Name)
		}
	} else if my.Entity != "" || len(my.ScalarFields) > 0 {
		return fmt.Errorf("非关联字段 %s 不能包含关联定义", my.Name)
	}
	return nil
}
