package gql

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hasura/go-graphql-client"
	"github.com/ichaly/gqlcf/gql/internal"
	"github.com/ichaly/gqlcf/gql/metadata"
	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/std"
	"github.com/ichaly/gqlcf/utl"
)

// Metadata 自定义字段元数据
// 加载完成后字段配置只读
type Metadata struct {
	cfg    *internal.Config
	fields CustomFields

	Version string
}

// MetadataOption 用于自定义Loader注册与移除
type MetadataOption func(*metadataOptions)

type metadataOptions struct {
	loaders []metadata.Loader
}

// WithLoader 添加或替换Loader
func WithLoader(loader metadata.Loader) MetadataOption {
	return func(opts *metadataOptions) {
		if loader == nil {
			return
		}
		// 替换同名Loader
		for i, l := range opts.loaders {
			if l.Name() == loader.Name() {
				opts.loaders[i] = loader
				return
			}
		}
		opts.loaders = append(opts.loaders, loader)
	}
}

// WithoutLoader 移除指定名称的Loader
func WithoutLoader(names ...string) MetadataOption {
	return func(opts *metadataOptions) {
		opts.loaders = slices.DeleteFunc(opts.loaders, func(l metadata.Loader) bool {
			return slices.Contains(names, l.Name())
		})
	}
}

// HookedLoader 装饰器，支持afterLoad钩子
// 用于Loader加载后自动执行额外操作（如保存文件）
type HookedLoader struct {
	metadata.Loader
	afterLoad func(h metadata.Hoster) error
}

func (my *HookedLoader) Load(ctx context.Context, h metadata.Hoster) error {
	if err := my.Loader.Load(ctx, h); err != nil {
		return err
	}
	if my.afterLoad != nil {
		return my.afterLoad(h)
	}
	return nil
}

// NewMetadata 按优先级依次执行Loader构建自定义字段配置
// 单个Loader失败只记录日志，没有任何配置时所有转换均不生效
func NewMetadata(k *std.Konfig, c *graphql.Client, opts ...MetadataOption) (*Metadata, error) {
	cfg := &internal.Config{}
	if err := k.Unmarshal(cfg); err != nil {
		return nil, err
	}

	my := &Metadata{
		cfg:    cfg,
		fields: make(CustomFields),
	}

	// 开发模式下上游加载结果自动保存到文件
	afterLoad := func(h metadata.Hoster) error {
		if cfg.IsDebug() && cfg.Metadata.Save {
			if meta, ok := h.(*Metadata); ok {
				return meta.SaveToFile(metadata.ResolvePath(cfg))
			}
		}
		return nil
	}
	options := &metadataOptions{loaders: []metadata.Loader{
		&HookedLoader{metadata.NewServerLoader(cfg, c), afterLoad},
		metadata.NewFileLoader(cfg),
		metadata.NewConfigLoader(cfg),
	}}
	for _, opt := range opts {
		opt(options)
	}

	// 升序，优先级高的后加载
	loaders := options.loaders
	slices.SortStableFunc(loaders, func(a, b metadata.Loader) int {
		return a.Priority() - b.Priority()
	})

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout(cfg))
	defer cancel()
	for _, loader := range loaders {
		if !loader.Support() {
			continue
		}
		if err := loader.Load(ctx, my); err != nil {
			log.Warn().Err(err).Str("loader", loader.Name()).Msg("加载器执行失败")
		}
	}

	// 版本由最终配置决定，任一来源变化都会得到新的版本
	my.Version = my.digest()
	log.Info().Int("entities", my.fields.Entities()).Str("version", my.Version).Msg("自定义字段元数据加载完成")
	return my, nil
}

func loadTimeout(cfg *internal.Config) time.Duration {
	if cfg.Gateway.Timeout > 0 {
		return cfg.Gateway.Timeout
	}
	return 30 * time.Second
}

// PutEntity 实现Hoster接口，整体替换实体的字段列表
func (my *Metadata) PutEntity(name string, fields []*CustomField) {
	if name == "" {
		return
	}
	my.fields[name] = fields
	if my.Version != "" {
		my.Version = my.digest()
	}
}

// GetEntity 实现Hoster接口
func (my *Metadata) GetEntity(name string) ([]*CustomField, bool) {
	fields, ok := my.fields[name]
	return fields, ok
}

// CustomFields 返回加载完成的自定义字段配置
func (my *Metadata) CustomFields() CustomFields {
	return my.fields
}

// For 获取实体的自定义字段
func (my *Metadata) For(entity string) []*CustomField {
	return my.fields.For(entity)
}

func (my *Metadata) Name() string {
	return "metadata"
}

// Ready 所有加载器执行完成后才生成版本号
func (my *Metadata) Ready() (any, error) {
	if my.Version == "" {
		return nil, errors.New("自定义字段元数据尚未加载")
	}
	return map[string]any{
		"version":  my.Version,
		"entities": my.fields.Entities(),
	}, nil
}

// Snapshot 返回可序列化的元数据文档
func (my *Metadata) Snapshot() *metadata.Document {
	return &metadata.Document{Version: my.digest(), Entities: my.fields}
}

// digest 计算字段配置的摘要，序列化时map按键排序
func (my *Metadata) digest() string {
	data, err := utl.MarshalJSON(my.fields)
	if err != nil {
		return ""
	}
	return utl.MD5(string(data))
}

// SaveToFile 将元数据保存为JSON文件
func (my *Metadata) SaveToFile(path string) error {
	data, err := utl.MarshalIndentJSON(my.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("序列化元数据失败: %w", err)
	}
	if err := utl.WriteFile(path, data); err != nil {
		return fmt.Errorf("保存元数据失败: %w", err)
	}
	log.Info().Str("file", path).Msg("元数据已保存")
	return nil
}
