package gql

import (
	"context"
	"sync"
	"testing"

	"github.com/ichaly/gqlcf/std"
	"github.com/ichaly/gqlcf/utl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func newRewriter(t *testing.T) *Rewriter {
	t.Helper()
	meta := &Metadata{
		Version: "test",
		fields: CustomFields{
			"Product": {
				{Name: "weight", Type: KindFloat},
				{Name: "rating", Type: KindInt, Readonly: true},
				{Name: "subtitle", Type: KindLocaleString},
				{Name: "avatar", Type: KindRelation, Entity: "Asset", ScalarFields: []string{"id", "preview"}},
			},
		},
	}
	cache, err := std.NewCache(&std.Config{})
	require.NoError(t, err)
	return NewRewriter(meta, cache)
}

const updateProduct = `
mutation UpdateProduct($input: UpdateProductInput!) {
  updateProduct(input: $input) {
    ...ProductDetail
  }
}

fragment ProductDetail on Product {
  id
  translations {
    name
  }
}`

func TestRewriter_Rewrite(t *testing.T) {
	ctx := context.Background()

	t.Run("查询注入自定义字段", func(t *testing.T) {
		r := newRewriter(t)
		vars := map[string]any{"id": "1"}
		out, err := r.Rewrite(ctx, Request{Query: productFragment, Variables: vars})
		require.NoError(t, err)

		doc := parseQuery(t, out.Query)
		fragment := doc.Fragments.ForName("ProductDetail")
		cf := findField(fragment.SelectionSet, CUSTOM_FIELDS)
		require.NotNil(t, cf)
		assert.Equal(t, []string{"weight", "rating", "subtitle", "avatar"}, names(cf.SelectionSet))
		assert.Equal(t, vars, out.Variables)
	})

	t.Run("变更处理变量", func(t *testing.T) {
		r := newRewriter(t)
		vars := map[string]any{
			"input": map[string]any{
				"id": "1",
				"customFields": map[string]any{
					"weight": 1.5,
					"rating": 4,
					"avatar": map[string]any{"id": "9", "preview": "x"},
				},
			},
		}
		out, err := r.Rewrite(ctx, Request{Query: updateProduct, Variables: vars})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"input": map[string]any{
				"id":           "1",
				"customFields": map[string]any{"weight": 1.5, "avatarId": "9"},
			},
		}, out.Variables)
		assert.Contains(t, vars["input"].(map[string]any)["customFields"], "rating", "入参不应被修改")
	})

	t.Run("按操作名选择变更", func(t *testing.T) {
		r := newRewriter(t)
		query := updateProduct + `
query GetProduct { product { id } }`
		vars := map[string]any{"input": map[string]any{"customFields": map[string]any{"rating": 1}}}

		out, err := r.Rewrite(ctx, Request{Query: query, OperationName: "GetProduct", Variables: vars})
		require.NoError(t, err)
		assert.Equal(t, vars, out.Variables)

		out, err = r.Rewrite(ctx, Request{Query: query, OperationName: "UpdateProduct", Variables: vars})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"input": map[string]any{"customFields": map[string]any{}}}, out.Variables)
	})

	t.Run("使用缓存", func(t *testing.T) {
		r := newRewriter(t)
		first, err := r.Rewrite(ctx, Request{Query: productFragment})
		require.NoError(t, err)

		key := "gql:" + utl.MD5(r.meta.Version+productFragment)
		val, ok := r.cache.Get(ctx, key)
		require.True(t, ok)
		assert.Contains(t, val, "customFields")

		second, err := r.Rewrite(ctx, Request{Query: productFragment})
		require.NoError(t, err)
		assert.Equal(t, first.Query, second.Query)
	})

	t.Run("并发改写", func(t *testing.T) {
		r := newRewriter(t)
		var wg sync.WaitGroup
		results := make([]string, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				out, err := r.Rewrite(ctx, Request{Query: productFragment})
				if err == nil {
					results[i] = out.Query
				}
			}(i)
		}
		wg.Wait()
		for _, q := range results {
			assert.Equal(t, results[0], q)
			assert.NotEmpty(t, q)
		}
	})

	t.Run("不使用缓存", func(t *testing.T) {
		r := NewRewriter(&Metadata{fields: CustomFields{}}, nil)
		out, err := r.Rewrite(ctx, Request{Query: `{ products { totalItems } }`})
		require.NoError(t, err)
		assert.Contains(t, out.Query, "totalItems")
	})

	t.Run("解析失败", func(t *testing.T) {
		r := newRewriter(t)
		_, err := r.Rewrite(ctx, Request{Query: `query {`})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)

		var gqlErr *gqlerror.Error
		assert.ErrorAs(t, err, &gqlErr)
	})
}
