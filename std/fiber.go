package std

import (
	"github.com/gofiber/contrib/fiberzerolog"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/utl"
)

// NewFiber 创建并配置一个新的fiber应用实例
func NewFiber(c *Config, l *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               c.Name,
		DisableStartupMessage: !c.IsDebug(),
		JSONEncoder:           utl.MarshalJSON,
		JSONDecoder:           utl.UnmarshalJSON,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return ctx.Status(code).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": err.Error()}},
			})
		},
	})

	// 注册基础中间件
	app.Use(requestid.New()) // 请求ID中间件
	app.Use(recover.New())   // 异常恢复中间件
	app.Use(cors.New())      // 跨域请求支持

	// 访问日志
	app.Use(fiberzerolog.New(fiberzerolog.Config{
		Logger: l.Zerolog(),
		Fields: []string{
			fiberzerolog.FieldRequestID,
			fiberzerolog.FieldMethod,
			fiberzerolog.FieldPath,
			fiberzerolog.FieldStatus,
			fiberzerolog.FieldLatency,
		},
	}))

	return app
}
