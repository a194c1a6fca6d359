package metadata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ichaly/gqlcf/gql/internal"
	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/utl"
)

// 正则表达式常量
var modeRegex = regexp.MustCompile(`{\s*mode\s*}`)

// FileLoader 文件元数据加载器
// 实现Loader接口
type FileLoader struct {
	cfg *internal.Config
}

// NewFileLoader 创建文件加载器
func NewFileLoader(cfg *internal.Config) *FileLoader {
	return &FileLoader{cfg: cfg}
}

func (my *FileLoader) Name() string  { return LoaderFile }
func (my *FileLoader) Priority() int { return 80 }

// Support 文件存在时才加载
func (my *FileLoader) Support() bool {
	if my.cfg == nil {
		return false
	}
	_, err := os.Stat(my.Path())
	return err == nil
}

// Path 解析文件路径
// 未配置时默认为 {root}/cfg/metadata.{mode}.json
func (my *FileLoader) Path() string {
	return ResolvePath(my.cfg)
}

// ResolvePath 解析元数据文件路径，支持{mode}占位符和相对路径
func ResolvePath(cfg *internal.Config) string {
	filePath := cfg.Metadata.File

	if filePath == "" {
		parts := []string{filepath.Join("cfg", "metadata")}
		if cfg.Mode != "" {
			parts = append(parts, cfg.Mode)
		}
		parts = append(parts, "json")
		filePath = strings.Join(parts, ".")
	} else {
		filePath = modeRegex.ReplaceAllString(filePath, cfg.Mode)
	}

	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(cfg.Root, filePath)
}

// Load 从文件加载元数据
func (my *FileLoader) Load(_ context.Context, h Hoster) error {
	filePath := my.Path()
	log.Info().Str("file", filePath).Msg("开始从文件加载元数据")

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}

	var doc Document
	if err := utl.UnmarshalJSON(data, &doc); err != nil {
		return fmt.Errorf("解析JSON失败: %w", err)
	}

	for entity, fields := range doc.Entities {
		h.PutEntity(entity, Sanitize(entity, fields))
	}

	log.Info().Int("entities", len(doc.Entities)).Msg("从文件加载元数据完成")
	return nil
}
