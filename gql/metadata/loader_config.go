package metadata

import (
	"context"

	"github.com/huandu/go-clone"
	"github.com/ichaly/gqlcf/gql/internal"
	"github.com/ichaly/gqlcf/log"
)

// ConfigLoader 配置元数据加载器
// 实现Loader接口，配置中声明的实体覆盖其他来源
type ConfigLoader struct {
	cfg *internal.Config
}

// NewConfigLoader 创建配置加载器
func NewConfigLoader(cfg *internal.Config) *ConfigLoader {
	return &ConfigLoader{cfg: cfg}
}

func (my *ConfigLoader) Name() string  { return LoaderConfig }
func (my *ConfigLoader) Priority() int { return 100 }

// Support 配置中声明了实体时才加载
func (my *ConfigLoader) Support() bool {
	return my.cfg != nil && len(my.cfg.Metadata.Entities) > 0
}

// Load 从配置加载元数据
func (my *ConfigLoader) Load(_ context.Context, h Hoster) error {
	for entity, fields := range my.cfg.Metadata.Entities {
		if _, ok := h.GetEntity(entity); ok {
			log.Debug().Str("entity", entity).Msg("配置覆盖已加载的实体")
		}
		// 复制一份，避免后续修改影响配置对象
		list := clone.Slowly(fields).([]*internal.CustomField)
		h.PutEntity(entity, Sanitize(entity, list))
	}
	log.Info().Int("entities", len(my.cfg.Metadata.Entities)).Msg("从配置加载元数据完成")
	return nil
}
