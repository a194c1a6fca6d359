package std

import (
	"time"

	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/std/internal"
)

type (
	DataSource    = internal.DataSource
	LogConfig     = internal.LogConfig
	GatewayConfig = internal.GatewayConfig
)

// Config 表示标准配置
type Config struct {
	internal.AppConfig `mapstructure:"app"`
	Mode               string                 `mapstructure:"mode"`
	Log                internal.LogConfig     `mapstructure:"log"`
	Gateway            internal.GatewayConfig `mapstructure:"gateway"`
}

func NewConfig(k *Konfig) (*Config, error) {
	if err := k.SetDefaults(map[string]interface{}{
		"app.name":        "gqlcf",
		"app.port":        "8080",
		"log.level":       "info",
		"gateway.path":    "/graphql",
		"gateway.timeout": 30 * time.Second,
		"gateway.headers": []string{"Authorization", "Vendure-Token"},
	}); err != nil {
		return nil, err
	}
	c := &Config{}
	if err := k.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}

// IsDebug 判断是否为开发模式
func (my *Config) IsDebug() bool {
	return my.Mode == "development" || my.Mode == "dev"
}

// NewLogger 根据配置创建日志记录器并设置为默认实例
func NewLogger(c *Config) *log.Logger {
	level := log.ParseLevel(c.Log.Level)
	var l *log.Logger
	if c.Log.File != "" {
		ops := []log.RotateOption{log.WithFilename(c.Log.File)}
		if c.Log.MaxSize > 0 {
			ops = append(ops, log.WithMaxSize(c.Log.MaxSize))
		}
		if c.Log.MaxAge > 0 {
			ops = append(ops, log.WithMaxAge(c.Log.MaxAge))
		}
		if c.Log.MaxBackups > 0 {
			ops = append(ops, log.WithMaxBackups(c.Log.MaxBackups))
		}
		l = log.NewRotateLogger(level, ops...)
	} else {
		l = log.NewLogger(log.WithLevel(level))
	}
	log.SetDefault(l)
	return l
}
