package metadata

import (
	"context"

	"github.com/ichaly/gqlcf/gql/internal"
	"github.com/ichaly/gqlcf/log"
	"github.com/samber/lo"
)

// Loader名称常量
const (
	LoaderServer = "server"
	LoaderFile   = "file"
	LoaderConfig = "config"
)

// Hoster 定义元数据承载者接口
// 负责实体自定义字段的写入和读取
type Hoster interface {
	PutEntity(name string, fields []*internal.CustomField)
	GetEntity(name string) ([]*internal.CustomField, bool)
}

// Loader 定义加载器接口
// 按Priority升序执行，后执行的加载器按实体覆盖先前的结果
type Loader interface {
	Name() string
	Priority() int
	Support() bool
	Load(ctx context.Context, h Hoster) error
}

// Document 元数据文件格式
// Version 是保存时的配置摘要，加载时不使用
type Document struct {
	Version  string                             `json:"version"`
	Entities map[string][]*internal.CustomField `json:"entities"`
}

// Sanitize 过滤无效和重名的字段定义，保持原有顺序
func Sanitize(entity string, fields []*internal.CustomField) []*internal.CustomField {
	seen := make(map[string]struct{}, len(fields))
	return lo.Filter(fields, func(f *internal.CustomField, _ int) bool {
		if f == nil {
			return false
		}
		if err := f.Validate(); err != nil {
			log.Warn().Err(err).Str("entity", entity).Msg("忽略无效的自定义字段")
			return false
		}
		if _, ok := seen[f.Name]; ok {
			log.Warn().Str("entity", entity).Str("field", f.Name).Msg("忽略重名的自定义字段")
			return false
		}
		seen[f.Name] = struct{}{}
		return true
	})
}
