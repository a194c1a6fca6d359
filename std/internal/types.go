package internal

import "time"

type AppConfig struct {
	Name  string      `mapstructure:"name"`
	Port  string      `mapstructure:"port"`
	Host  string      `mapstructure:"host"`
	Root  string      `mapstructure:"root"`
	Cache *DataSource `mapstructure:"cache"`
}

// DataSource 外部存储连接配置
type DataSource struct {
	// Dialect 存储类型: memory, redis
	Dialect  string        `mapstructure:"dialect"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Name     int           `mapstructure:"name"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Expire   time.Duration `mapstructure:"expire"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max-size"`
	MaxAge     int    `mapstructure:"max-age"`
	MaxBackups int    `mapstructure:"max-backups"`
}

// GatewayConfig 上游GraphQL服务配置
type GatewayConfig struct {
	// Upstream 上游GraphQL地址
	Upstream string `mapstructure:"upstream"`
	// Path 网关对外暴露的路径
	Path string `mapstructure:"path"`
	// Timeout 请求上游超时时间
	Timeout time.Duration `mapstructure:"timeout"`
	// Headers 需要透传给上游的请求头
	Headers []string `mapstructure:"headers"`
}
