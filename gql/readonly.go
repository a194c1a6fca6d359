package gql

import (
	"github.com/ichaly/gqlcf/utl"
	"github.com/samber/lo"
)

// RemoveReadonlyCustomFields 删除变更变量中只读的自定义字段
//
// localeString类型的只读字段从每个translations[i].customFields中删除，
// 其余类型只从实体顶层的customFields中删除。返回新的变量，入参保持不变。
func RemoveReadonlyCustomFields(vars map[string]any, fields []*CustomField) map[string]any {
	out := copyVariables(vars)
	readonly := lo.Filter(fields, func(f *CustomField, _ int) bool {
		return f.Readonly
	})
	if len(readonly) == 0 {
		return out
	}
	for _, entity := range Entities(out) {
		removeReadonly(entity, readonly)
	}
	return out
}

func removeReadonly(entity map[string]any, readonly []*CustomField) {
	for _, f := range readonly {
		if !f.IsLocaleString() {
			if cf, ok := customFieldsOf(entity); ok {
				delete(cf, f.Name)
			}
			continue
		}
		translations, ok := utl.AsSlice(entity[TRANSLATIONS])
		if !ok {
			continue
		}
		for _, item := range translations {
			if translation, ok := utl.AsMap(item); ok {
				if cf, ok := customFieldsOf(translation); ok {
					delete(cf, f.Name)
				}
			}
		}
	}
}
