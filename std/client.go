package std

import (
	"net/http"

	"github.com/hasura/go-graphql-client"
)

// NewGraphQLClient 创建访问上游GraphQL服务的客户端
func NewGraphQLClient(c *Config) *graphql.Client {
	return graphql.NewClient(c.Gateway.Upstream, &http.Client{Timeout: c.Gateway.Timeout})
}
