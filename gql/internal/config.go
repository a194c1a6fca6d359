package internal

import "github.com/ichaly/gqlcf/std"

// Config 表示自定义字段相关配置
type Config struct {
	std.Config `mapstructure:",squash"`
	Metadata   MetadataConfig `mapstructure:"metadata"`
}

// MetadataConfig 自定义字段元数据来源配置
type MetadataConfig struct {
	// 元数据文件路径，支持{mode}占位符
	File string `mapstructure:"file"`

	// 是否从上游服务加载
	Server bool `mapstructure:"server"`

	// 从上游加载时使用的管理员令牌
	Token string `mapstructure:"token"`

	// 开发模式下是否将上游加载结果保存到文件
	Save bool `mapstructure:"save"`

	// 直接在配置中声明的实体字段(key: 实体名)
	Entities map[string][]*CustomField `mapstructure:"entities"`
}
