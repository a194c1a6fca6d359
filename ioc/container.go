package ioc

import (
	"github.com/ichaly/gqlcf/std"
	"go.uber.org/fx"
)

type pluginType = std.Plugin
type checkerType = std.Checker

var options []Option

func Add(args ...Option) {
	options = append(options, args...)
}

func Get() Option {
	return fx.Options(options...)
}

func init() {
	Add(
		Provide(
			std.NewFiber,
			Plugin(std.NewHealth, ParamTags(`group:"checker"`)),
		),
		Invoke(std.Bootstrap),
	)
}
