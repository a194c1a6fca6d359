package gql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func parseQuery(t *testing.T, query string) *ast.QueryDocument {
	t.Helper()
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	require.NoError(t, err)
	return doc
}

// names 返回选择集中字段的名称
func names(set ast.SelectionSet) []string {
	var result []string
	for _, s := range set {
		if f, ok := s.(*ast.Field); ok {
			result = append(result, f.Name)
		}
	}
	return result
}

func countField(set ast.SelectionSet, name string) int {
	count := 0
	for _, s := range set {
		if f, ok := s.(*ast.Field); ok && f.Name == name {
			count++
		}
	}
	return count
}

const productFragment = `
query GetProduct($id: ID!) {
  product(id: $id) {
    ...ProductDetail
  }
}

fragment ProductDetail on Product {
  id
  name
  translations {
    id
    languageCode
    name
  }
}`

func TestAddCustomFields(t *testing.T) {
	t.Run("按配置顺序追加customFields", func(t *testing.T) {
		doc := parseQuery(t, productFragment)
		fields := CustomFields{
			"Product": {
				{Name: "custom1", Type: KindString},
				{Name: "custom2", Type: KindBoolean},
			},
		}

		out := AddCustomFields(doc, fields)
		fragment := out.Fragments.ForName("ProductDetail")
		require.NotNil(t, fragment)

		assert.Equal(t, 1, countField(fragment.SelectionSet, CUSTOM_FIELDS))
		cf := findField(fragment.SelectionSet, CUSTOM_FIELDS)
		require.NotNil(t, cf)
		assert.Equal(t, []string{"custom1", "custom2"}, names(cf.SelectionSet))

		translations := findField(fragment.SelectionSet, TRANSLATIONS)
		assert.Equal(t, 0, countField(translations.SelectionSet, CUSTOM_FIELDS), "没有多语言字段时不修改translations")
	})

	t.Run("关联字段展开scalarFields", func(t *testing.T) {
		doc := parseQuery(t, `fragment CustomerDetail on Customer { id }`)
		fields := CustomFields{
			"Customer": {
				{Name: "avatar", Type: KindRelation, Entity: "Asset", ScalarFields: []string{"id", "preview"}},
			},
		}

		out := AddCustomFields(doc, fields)
		cf := findField(out.Fragments[0].SelectionSet, CUSTOM_FIELDS)
		require.NotNil(t, cf)
		avatar := findField(cf.SelectionSet, "avatar")
		require.NotNil(t, avatar)
		assert.Equal(t, []string{"id", "preview"}, names(avatar.SelectionSet))
	})

	t.Run("多语言字段追加到translations", func(t *testing.T) {
		doc := parseQuery(t, productFragment)
		fields := CustomFields{
			"Product": {
				{Name: "subtitle", Type: KindLocaleString},
				{Name: "weight", Type: KindFloat},
				{Name: "story", Type: KindLocaleText},
			},
		}

		out := AddCustomFields(doc, fields)
		fragment := out.Fragments.ForName("ProductDetail")
		cf := findField(fragment.SelectionSet, CUSTOM_FIELDS)
		assert.Equal(t, []string{"subtitle", "weight", "story"}, names(cf.SelectionSet))

		translations := findField(fragment.SelectionSet, TRANSLATIONS)
		require.NotNil(t, translations)
		assert.Equal(t, 1, countField(translations.SelectionSet, CUSTOM_FIELDS))
		locale := findField(translations.SelectionSet, CUSTOM_FIELDS)
		assert.Equal(t, []string{"subtitle"}, names(locale.SelectionSet))
	})

	t.Run("OrderAddress使用Address配置", func(t *testing.T) {
		doc := parseQuery(t, `fragment ShippingAddress on OrderAddress { fullName }`)
		fields := CustomFields{
			"Address": {{Name: "floor", Type: KindInt}},
		}

		out := AddCustomFields(doc, fields)
		cf := findField(out.Fragments[0].SelectionSet, CUSTOM_FIELDS)
		require.NotNil(t, cf)
		assert.Equal(t, []string{"floor"}, names(cf.SelectionSet))
	})

	t.Run("未配置或空配置不修改片段", func(t *testing.T) {
		doc := parseQuery(t, productFragment)
		for _, fields := range []CustomFields{
			nil,
			{"Customer": {{Name: "custom1", Type: KindString}}},
			{"Product": {}},
		} {
			out := AddCustomFields(doc, fields)
			assert.Len(t, out.Fragments[0].SelectionSet, 3)
		}
	})

	t.Run("不修改入参文档", func(t *testing.T) {
		doc := parseQuery(t, productFragment)
		fields := CustomFields{"Product": {{Name: "custom1", Type: KindString}}}

		out := AddCustomFields(doc, fields)
		assert.NotSame(t, doc, out)
		assert.Len(t, doc.Fragments[0].SelectionSet, 3)
		assert.Len(t, out.Fragments[0].SelectionSet, 4)
	})

	t.Run("重复注入不产生重复选择", func(t *testing.T) {
		doc := parseQuery(t, productFragment)
		fields := CustomFields{
			"Product": {
				{Name: "custom1", Type: KindString},
				{Name: "subtitle", Type: KindLocaleString},
			},
		}

		once := AddCustomFields(doc, fields)
		twice := AddCustomFields(once, fields)
		fragment := twice.Fragments[0]
		assert.Equal(t, 1, countField(fragment.SelectionSet, CUSTOM_FIELDS))
		translations := findField(fragment.SelectionSet, TRANSLATIONS)
		assert.Equal(t, 1, countField(translations.SelectionSet, CUSTOM_FIELDS))
		assert.Equal(t, Print(once), Print(twice))
	})

	t.Run("带别名的translations同样追加多语言字段", func(t *testing.T) {
		doc := parseQuery(t, `fragment P on Product { id t: translations { name } }`)
		fields := CustomFields{"Product": {{Name: "subtitle", Type: KindLocaleString}}}

		out := AddCustomFields(doc, fields)
		translations := fieldByName(out.Fragments[0].SelectionSet, TRANSLATIONS)
		require.NotNil(t, translations)
		assert.Equal(t, "t", translations.Alias)
		locale := findField(translations.SelectionSet, CUSTOM_FIELDS)
		require.NotNil(t, locale)
		assert.Equal(t, []string{"subtitle"}, names(locale.SelectionSet))
	})

	t.Run("别名字段不视为已注入", func(t *testing.T) {
		doc := parseQuery(t, `fragment P on Product { extra: customFields { custom1 } }`)
		fields := CustomFields{"Product": {{Name: "custom1", Type: KindString}}}

		out := AddCustomFields(doc, fields)
		assert.Equal(t, 2, countField(out.Fragments[0].SelectionSet, CUSTOM_FIELDS))
	})

	t.Run("空文档", func(t *testing.T) {
		assert.Nil(t, AddCustomFields(nil, CustomFields{}))
	})
}
