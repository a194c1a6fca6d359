package gql

import (
	"github.com/ichaly/gqlcf/utl"
	"github.com/samber/lo"
)

// TransformRelationCustomFieldInputs 将关联类型的自定义字段值转换为变更输入要求的id形式
//
// 单值关联 name: {id, ...} 转为 nameId: id，列表关联 name: [{id}, ...] 转为 nameIds: [id, ...]。
// 只处理顶层customFields，返回新的变量，入参保持不变。
func TransformRelationCustomFieldInputs(vars map[string]any, fields []*CustomField) map[string]any {
	out := copyVariables(vars)
	relations := lo.Filter(fields, func(f *CustomField, _ int) bool {
		return f.IsRelation()
	})
	if len(relations) == 0 {
		return out
	}
	for _, entity := range Entities(out) {
		cf, ok := customFieldsOf(entity)
		if !ok {
			continue
		}
		for _, f := range relations {
			transformRelation(cf, f)
		}
	}
	return out
}

func transformRelation(cf map[string]any, f *CustomField) {
	value, ok := cf[f.Name]
	if !ok {
		return
	}
	delete(cf, f.Name)

	if f.List {
		key := utl.JoinString(f.Name, SUFFIX_IDS)
		if value == nil {
			cf[key] = nil
			return
		}
		// 非数组的值没有对应的输入形式，不写入新键
		if list, ok := utl.AsSlice(value); ok {
			cf[key] = lo.Map(list, func(item any, _ int) any {
				id, _ := idOf(item)
				return id
			})
		}
		return
	}

	key := utl.JoinString(f.Name, SUFFIX_ID)
	if value == nil {
		cf[key] = nil
		return
	}
	if id, ok := idOf(value); ok {
		cf[key] = id
	}
}

// idOf 读取关联对象的id，对象为空或没有id时返回false
func idOf(v any) (any, bool) {
	m, ok := utl.AsMap(v)
	if !ok {
		return nil, false
	}
	id, ok := m[ID]
	return id, ok
}
