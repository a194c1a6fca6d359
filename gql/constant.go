package gql

import (
	"errors"
	"regexp"
)

// 字段名称
const (
	CUSTOM_FIELDS = "customFields"
	TRANSLATIONS  = "translations"
	INPUT         = "input"
	ID            = "id"
)

// 关联字段输入后缀
const (
	SUFFIX_ID  = "Id"
	SUFFIX_IDS = "Ids"
)

// 实体别名，左侧实体读取右侧实体的配置
var entityAlias = map[string]string{
	"OrderAddress": "Address",
}

// 匹配 CreateXxxInput / UpdateXxxInput
var mutationInputRegex = regexp.MustCompile(`^(Create|Update)([A-Za-z]+)Input$`)

var (
	// ErrParse 查询文档解析失败
	ErrParse = errors.New("解析GraphQL文档失败")
	// ErrOperation 找不到要执行的操作
	ErrOperation = errors.New("找不到指定的GraphQL操作")
)
