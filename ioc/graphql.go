package ioc

import (
	"github.com/ichaly/gqlcf/gql"
	"github.com/ichaly/gqlcf/gtw"
)

// 网关模块
func init() {
	Add(Module("graphql",
		Provide(
			gql.NewMetadata,
			gql.NewRewriter,
			Checker(func(m *gql.Metadata) *gql.Metadata { return m }),
			Plugin(gtw.NewGateway),
		),
	))
}
