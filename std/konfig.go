package std

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ichaly/gqlcf/log"
	"github.com/ichaly/gqlcf/utl"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Konfig 配置管理器，包装了koanf.Koanf
// 配置在启动时一次性加载，运行期间只读
type Konfig struct {
	k     *koanf.Koanf
	delim string
}

// KonfigOption 定义配置选项函数类型
type KonfigOption func(*konfigOptions)

type konfigOptions struct {
	configType string
	envPrefix  string
	filePath   string
	content    []byte
	delim      string
	strict     bool
}

// WithFilePath 设置配置文件路径，文件类型由扩展名决定
func WithFilePath(filePath string) KonfigOption {
	return func(options *konfigOptions) {
		if filePath != "" {
			options.filePath = filePath
			options.configType = strings.TrimPrefix(filepath.Ext(filePath), ".")
		}
	}
}

// WithContent 直接提供YAML配置内容，在配置文件之后加载
func WithContent(content []byte) KonfigOption {
	return func(options *konfigOptions) {
		options.content = content
	}
}

// WithEnvPrefix 设置环境变量前缀
func WithEnvPrefix(prefix string) KonfigOption {
	return func(options *konfigOptions) {
		options.envPrefix = prefix
	}
}

// WithStrictMerge 设置严格合并
func WithStrictMerge(strict bool) KonfigOption {
	return func(options *konfigOptions) {
		options.strict = strict
	}
}

// loadStep 一个配置来源
type loadStep struct {
	name string
	load func(k *koanf.Koanf, options *konfigOptions) error
}

// 加载顺序: 内置默认值 -> .env -> 配置文件 -> profile配置文件 -> 配置内容 -> 环境变量
var loadSteps = []loadStep{
	{"defaults", loadDefaults},
	{"dotenv", loadEnvFile},
	{"file", loadConfigFile},
	{"profile", mergeProfiles},
	{"content", loadContent},
	{"env", loadEnv},
}

// NewKonfig 按顺序加载所有配置来源，后加载的覆盖先加载的
func NewKonfig(opts ...KonfigOption) (*Konfig, error) {
	options := &konfigOptions{
		configType: "yaml",
		envPrefix:  "APP",
		delim:      ".",
	}
	for _, opt := range opts {
		opt(options)
	}

	k := koanf.NewWithConf(koanf.Conf{
		Delim:       options.delim,
		StrictMerge: options.strict,
	})
	for _, step := range loadSteps {
		if err := step.load(k, options); err != nil {
			return nil, fmt.Errorf("加载%s配置失败: %w", step.name, err)
		}
	}

	return &Konfig{k: k, delim: options.delim}, nil
}

func loadDefaults(k *koanf.Koanf, _ *konfigOptions) error {
	return k.Load(confmap.Provider(map[string]interface{}{
		"mode":            "dev",
		"profiles.active": "",
		"app.root":        utl.Root(),
	}, "."), nil)
}

// loadEnvFile 加载项目根目录下的.env文件(可选)
func loadEnvFile(_ *koanf.Koanf, _ *konfigOptions) error {
	envFile := filepath.Join(utl.Root(), ".env")
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(envFile)
}

// parserFor 根据文件类型选择解析器
func parserFor(configType string) (koanf.Parser, error) {
	switch configType {
	case "yaml", "yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("不支持的配置文件类型: %s", configType)
	}
}

func loadConfigFile(k *koanf.Koanf, options *konfigOptions) error {
	if options.filePath == "" {
		return nil
	}
	parser, err := parserFor(options.configType)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(options.filePath), parser); err != nil {
		return err
	}
	log.Info().Str("file", options.filePath).Msg("配置文件已加载")
	return nil
}

// mergeProfiles 合并 <name>-<profile>.<ext> 配置文件，mode总是最后一个profile
func mergeProfiles(k *koanf.Koanf, options *konfigOptions) error {
	if options.filePath == "" {
		return nil
	}
	dir := filepath.Dir(options.filePath)
	ext := filepath.Ext(options.filePath)
	name := strings.TrimSuffix(filepath.Base(options.filePath), ext)

	profiles := activeProfiles(k)
	if len(profiles) == 0 {
		return nil
	}
	parser, err := parserFor(options.configType)
	if err != nil {
		return err
	}
	for _, profile := range profiles {
		path := filepath.Join(dir, utl.JoinString(name, "-", profile, ext))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Debug().Str("profile", profile).Str("file", path).Msg("配置文件不存在，跳过")
			continue
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return err
		}
		log.Info().Str("profile", profile).Str("file", path).Msg("配置文件已合并")
	}
	return nil
}

func activeProfiles(k *koanf.Koanf) []string {
	var profiles []string
	for _, p := range strings.Split(k.String("profiles.active"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			profiles = append(profiles, p)
		}
	}
	if mode := k.String("mode"); mode != "" {
		profiles = append(profiles, mode)
	}
	return profiles
}

func loadContent(k *koanf.Koanf, options *konfigOptions) error {
	if len(options.content) == 0 {
		return nil
	}
	return k.Load(rawbytes.Provider(options.content), yaml.Parser())
}

// loadEnv 环境变量优先级最高，APP_GATEWAY_UPSTREAM 对应 gateway.upstream
func loadEnv(k *koanf.Koanf, options *konfigOptions) error {
	prefix := options.envPrefix + "_"
	return k.Load(env.Provider(prefix, options.delim, func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", options.delim)
	}), nil)
}

// Set 设置配置项
func (my *Konfig) Set(path string, value interface{}) {
	_ = my.k.Set(path, value)
}

// IsSet 判断配置项是否存在
func (my *Konfig) IsSet(path string) bool {
	return my.k.Exists(path)
}

// Unmarshal 将全部配置解析到结构体，使用mapstructure标签
func (my *Konfig) Unmarshal(val interface{}) error {
	err := my.k.UnmarshalWithConf("", val, koanf.UnmarshalConf{Tag: "mapstructure"})
	if err != nil {
		log.Error().Err(err).Msg("配置解析失败")
	}
	return err
}

// SetDefault 设置单个配置项的默认值
func (my *Konfig) SetDefault(path string, value interface{}) {
	if !my.IsSet(path) {
		my.Set(path, value)
	}
}

// SetDefaults 批量设置默认值，已存在的配置项不会被覆盖
func (my *Konfig) SetDefaults(defaults map[string]interface{}) error {
	k := koanf.New(my.delim)
	if err := k.Load(confmap.Provider(defaults, my.delim), nil); err != nil {
		return err
	}
	for _, key := range k.Keys() {
		my.SetDefault(key, k.Get(key))
	}
	return nil
}
