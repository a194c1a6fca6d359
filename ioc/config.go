package ioc

import (
	"github.com/ichaly/gqlcf/std"
)

// 配置模块
func init() {
	Add(Module("config",
		Provide(
			// 传递 Option 参数,filePath由调fx.Supply方法提供
			Annotate(
				std.WithFilePath,
				ResultTags(`group:"konfigOptions"`),
			),
			Annotate(
				std.NewKonfig,
				ParamTags(`group:"konfigOptions"`),
			),
			std.NewConfig,
			std.NewLogger,
			std.NewCache,
			std.NewGraphQLClient,
		),
	))
}
