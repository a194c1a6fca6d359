package gql

import (
	"github.com/huandu/go-clone"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// AddCustomFields 为文档中类型条件命中配置的片段追加customFields选择集
//
// 返回深拷贝后的新文档，入参文档不会被修改。已经包含customFields选择的片段
// 不会重复追加，因此对结果再次调用得到相同的文档。
func AddCustomFields(doc *ast.QueryDocument, fields CustomFields) *ast.QueryDocument {
	if doc == nil {
		return nil
	}
	out := clone.Slowly(doc).(*ast.QueryDocument)

	for _, fragment := range out.Fragments {
		list := fields.For(fragment.TypeCondition)
		if len(list) == 0 {
			continue
		}

		if findField(fragment.SelectionSet, CUSTOM_FIELDS) == nil {
			fragment.SelectionSet = append(fragment.SelectionSet, customFieldsSelection(list))
		}

		// 多语言字段同时挂在translations下
		locales := lo.Filter(list, func(f *CustomField, _ int) bool {
			return f.IsLocaleString()
		})
		if len(locales) == 0 {
			continue
		}
		translations := fieldByName(fragment.SelectionSet, TRANSLATIONS)
		if translations == nil || len(translations.SelectionSet) == 0 {
			continue
		}
		if findField(translations.SelectionSet, CUSTOM_FIELDS) == nil {
			translations.SelectionSet = append(translations.SelectionSet, customFieldsSelection(locales))
		}
	}

	return out
}

// customFieldsSelection 构建 customFields { ... } 选择，关联字段展开scalarFields
func customFieldsSelection(list []*CustomField) *ast.Field {
	children := make(ast.SelectionSet, 0, len(list))
	for _, f := range list {
		field := newField(f.Name)
		if f.IsRelation() {
			for _, name := range f.ScalarFields {
				field.SelectionSet = append(field.SelectionSet, newField(name))
			}
		}
		children = append(children, field)
	}
	field := newField(CUSTOM_FIELDS)
	field.SelectionSet = children
	return field
}

func newField(name string) *ast.Field {
	return &ast.Field{Alias: name, Name: name}
}

// fieldByName 按字段名查找选择，忽略别名
func fieldByName(set ast.SelectionSet, name string) *ast.Field {
	for _, s := range set {
		if f, ok := s.(*ast.Field); ok && f.Name == name {
			return f
		}
	}
	return nil
}

// findField 查找未使用别名的同名字段选择
func findField(set ast.SelectionSet, name string) *ast.Field {
	for _, s := range set {
		if f, ok := s.(*ast.Field); ok && f.Name == name && (f.Alias == "" || f.Alias == name) {
			return f
		}
	}
	return nil
}
