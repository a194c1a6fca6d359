package gtw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/hasura/go-graphql-client"
	"github.com/ichaly/gqlcf/gql"
	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/std"
	"github.com/ichaly/gqlcf/utl"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// 客户端在请求上游失败时使用的错误码
const requestError = "request_error"

// Gateway GraphQL网关插件
// 改写请求后转发到上游服务
type Gateway struct {
	cfg      *std.Config
	meta     *gql.Metadata
	client   *graphql.Client
	rewriter *gql.Rewriter
}

// NewGateway 创建网关插件
func NewGateway(c *std.Config, m *gql.Metadata, r *gql.Rewriter, client *graphql.Client) *Gateway {
	return &Gateway{cfg: c, meta: m, rewriter: r, client: client}
}

func (my *Gateway) Base() string {
	return my.cfg.Gateway.Path
}

func (my *Gateway) Init(r fiber.Router) {
	r.Post("/", my.Handler)
	r.Get("/config", my.Config)
}

// Handler 处理GraphQL请求
func (my *Gateway) Handler(c *fiber.Ctx) error {
	var req gql.Request
	if err := utl.UnmarshalJSON(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "请求体不是有效的JSON")
	}
	if req.Query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "缺少query参数")
	}

	ctx := c.UserContext()
	if my.cfg.Gateway.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, my.cfg.Gateway.Timeout)
		defer cancel()
	}

	out, err := my.rewriter.Rewrite(ctx, req)
	if err != nil {
		var gqlErr *gqlerror.Error
		if errors.As(err, &gqlErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": gqlerror.List{gqlErr}})
		}
		if errors.Is(err, gql.ErrParse) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	var ops []graphql.Option
	if out.OperationName != "" {
		ops = append(ops, graphql.OperationName(out.OperationName))
	}
	data, err := my.forward(c).ExecRaw(ctx, out.Query, out.Variables, ops...)
	if err == nil {
		return c.JSON(fiber.Map{"data": json.RawMessage(data)})
	}

	var errs graphql.Errors
	if !errors.As(err, &errs) {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
	status := fiber.StatusOK
	for _, e := range errs {
		if e.Extensions["code"] == requestError {
			status = fiber.StatusBadGateway
			log.Warn().Str("upstream", my.cfg.Gateway.Upstream).Str("error", e.Message).Msg("请求上游失败")
			break
		}
	}
	result := fiber.Map{"errors": errs}
	if len(data) > 0 {
		result["data"] = json.RawMessage(data)
	}
	return c.Status(status).JSON(result)
}

// Config 返回已加载的自定义字段配置
func (my *Gateway) Config(c *fiber.Ctx) error {
	return c.JSON(my.meta.Snapshot())
}

// forward 透传配置的请求头
func (my *Gateway) forward(c *fiber.Ctx) *graphql.Client {
	headers := make(map[string]string)
	for _, name := range my.cfg.Gateway.Headers {
		if v := c.Get(name); v != "" {
			headers[name] = v
		}
	}
	if len(headers) == 0 {
		return my.client
	}
	return my.client.WithRequestModifier(func(r *http.Request) {
		for k, v := range headers {
			r.Header.Set(k, v)
		}
	})
}
