package std

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/utl"
	"go.uber.org/fx"
)

var (
	// Version 当前版本号
	Version = "V0.0.0"
	// GitCommit Git提交哈希
	GitCommit = "Unknown"
	// BuildTime 构建时间
	BuildTime = ""
)

// Plugin 插件接口
type Plugin interface {
	// Base 插件基础路径
	Base() string
	// Init 初始化插件
	Init(fiber.Router)
}

// PluginGroup 插件组
type PluginGroup struct {
	fx.In
	Plugins []Plugin `group:"plugin"`
}

// Mount 按插件基础路径注册路由，相同路径共用一个路由组
func Mount(a *fiber.App, plugins ...Plugin) {
	routers := map[string]fiber.Router{"/": a}
	for _, p := range plugins {
		base := utl.NormalizePath(p.Base())
		r, ok := routers[base]
		if !ok {
			r = a.Group(base)
			routers[base] = r
		}
		p.Init(r)
	}
}

// Bootstrap 应用程序引导函数
func Bootstrap(l fx.Lifecycle, c *Config, a *fiber.App, g PluginGroup) {
	if BuildTime == "" {
		BuildTime = time.Now().Format(time.DateTime)
	}

	Mount(a, g.Plugins...)

	l.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := net.JoinHostPort(c.Host, c.Port)
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("%v 启动失败: %w", c.Name, err)
			}
			go func() {
				if err := a.Listener(ln); err != nil {
					log.Error().Err(err).Str("addr", addr).Msg("服务异常退出")
				}
			}()
			log.Info().
				Str("addr", addr).
				Str("version", Version).
				Str("commit", GitCommit).
				Str("build", BuildTime).
				Msg("服务已启动")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := a.ShutdownWithContext(ctx)
			log.Info().Str("name", c.Name).Msg("服务已关闭")
			return err
		},
	})
}
