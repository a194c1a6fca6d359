package metadata

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hasura/go-graphql-client"
	"github.com/ichaly/gqlcf/gql/internal"
	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/utl"
)

// 上游服务的自定义字段配置查询
const entityCustomFieldsQuery = `query EntityCustomFields {
  globalSettings {
    serverConfig {
      entityCustomFields {
        entityName
        customFields {
          name
          type
          list
          nullable
          readonly
          ... on RelationCustomFieldConfig {
            entity
            scalarFields
          }
        }
      }
    }
  }
}`

type serverResult struct {
	GlobalSettings struct {
		ServerConfig struct {
			EntityCustomFields []struct {
				EntityName   string                  `json:"entityName"`
				CustomFields []*internal.CustomField `json:"customFields"`
			} `json:"entityCustomFields"`
		} `json:"serverConfig"`
	} `json:"globalSettings"`
}

// ServerLoader 上游服务元数据加载器
// 实现Loader接口
type ServerLoader struct {
	cfg    *internal.Config
	client *graphql.Client
}

// NewServerLoader 创建上游服务加载器
func NewServerLoader(cfg *internal.Config, client *graphql.Client) *ServerLoader {
	return &ServerLoader{cfg: cfg, client: client}
}

func (my *ServerLoader) Name() string  { return LoaderServer }
func (my *ServerLoader) Priority() int { return 60 }

func (my *ServerLoader) Support() bool {
	return my.cfg != nil && my.client != nil && my.cfg.Metadata.Server
}

// Load 查询上游服务的实体自定义字段配置
func (my *ServerLoader) Load(ctx context.Context, h Hoster) error {
	log.Info().Str("upstream", my.cfg.Gateway.Upstream).Msg("开始从上游服务加载元数据")

	client := my.client
	if token := my.cfg.Metadata.Token; token != "" {
		client = client.WithRequestModifier(func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
	}

	data, err := client.ExecRaw(ctx, entityCustomFieldsQuery, nil)
	if err != nil {
		return fmt.Errorf("查询上游自定义字段失败: %w", err)
	}

	var result serverResult
	if err := utl.UnmarshalJSON(data, &result); err != nil {
		return fmt.Errorf("解析上游响应失败: %w", err)
	}

	list := result.GlobalSettings.ServerConfig.EntityCustomFields
	for _, e := range list {
		h.PutEntity(e.EntityName, Sanitize(e.EntityName, e.CustomFields))
	}

	log.Info().Int("entities", len(list)).Msg("从上游服务加载元数据完成")
	return nil
}
