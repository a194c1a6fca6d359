package gql

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/std"
	"github.com/ichaly/gqlcf/utl"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/sync/singleflight"
)

// Request 发往上游的GraphQL请求
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// document 缓存的改写结果
type document struct {
	Query string `json:"query"`
	// 操作名到变更实体的映射，未指定操作名时使用空字符串
	Mutations map[string]string `json:"mutations,omitempty"`
}

// Rewriter 为请求注入自定义字段并处理变更变量
type Rewriter struct {
	meta  *Metadata
	cache *std.Cache
	group singleflight.Group
}

// NewRewriter 创建请求改写器，cache为空时不缓存
func NewRewriter(m *Metadata, c *std.Cache) *Rewriter {
	return &Rewriter{meta: m, cache: c}
}

// Rewrite 改写请求，返回新的请求对象，入参不会被修改
func (my *Rewriter) Rewrite(ctx context.Context, req Request) (*Request, error) {
	doc, err := my.document(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	out := &Request{
		Query:         doc.Query,
		OperationName: req.OperationName,
		Variables:     req.Variables,
	}

	entity, ok := doc.Mutations[req.OperationName]
	if !ok {
		return out, nil
	}
	fields := my.meta.For(entity)
	if len(fields) == 0 {
		return out, nil
	}
	out.Variables = PrepareMutationVariables(req.Variables, fields)
	log.Debug().Str("entity", entity).Str("operation", req.OperationName).Msg("变更变量已处理")
	return out, nil
}

// document 获取改写后的文档，优先读取缓存
func (my *Rewriter) document(ctx context.Context, query string) (*document, error) {
	key := "gql:" + utl.MD5(my.meta.Version+query)

	if my.cache != nil {
		if val, ok := my.cache.Get(ctx, key); ok {
			doc := &document{}
			if err := utl.UnmarshalJSON([]byte(val), doc); err == nil {
				return doc, nil
			}
			log.Warn().Str("key", key).Msg("缓存内容无效，重新改写")
		}
	}

	val, err, _ := my.group.Do(key, func() (interface{}, error) {
		doc, err := my.rewrite(query)
		if err != nil {
			return nil, err
		}
		if my.cache != nil {
			if data, err := utl.MarshalJSON(doc); err == nil {
				if err := my.cache.Set(ctx, key, string(data)); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("写入缓存失败")
				}
			}
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*document), nil
}

// rewrite 解析查询、注入自定义字段并重新输出
func (my *Rewriter) rewrite(query string) (*document, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	doc = AddCustomFields(doc, my.meta.CustomFields())

	result := &document{Query: Print(doc)}
	for _, op := range doc.Operations {
		entity, ok := MutationEntity(op)
		if !ok {
			continue
		}
		if result.Mutations == nil {
			result.Mutations = make(map[string]string)
		}
		result.Mutations[op.Name] = entity
		// 只有一个操作时允许不指定操作名
		if len(doc.Operations) == 1 {
			result.Mutations[""] = entity
		}
	}
	return result, nil
}

// Print 输出文档，用于离线改写
func Print(doc *ast.QueryDocument) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String()
}
