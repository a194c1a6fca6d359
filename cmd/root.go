package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ichaly/gqlcf/std"
	"github.com/ichaly/gqlcf/utl"
	"github.com/spf13/cobra"
)

const configFlag = "config"

var rootCmd = &cobra.Command{
	Use:     "gqlcf",
	Short:   "GraphQL 自定义字段网关",
	Version: std.Version,
}

func init() {
	rootCmd.PersistentFlags().StringP(
		configFlag, "c", "", "config file (default cfg/config.yml)",
	)
}

// configFile 读取配置文件路径，未指定时使用项目根目录下的默认配置
func configFile(cmd *cobra.Command) string {
	file, _ := cmd.Flags().GetString(configFlag)
	if file == "" {
		file = filepath.Join(utl.Root(), "cfg", "config.yml")
	}
	return file
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
