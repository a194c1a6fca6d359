package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ichaly/gqlcf/gql"
	"github.com/ichaly/gqlcf/std"
	"github.com/ichaly/gqlcf/utl"
	"github.com/spf13/cobra"
)

var (
	queryFile     string
	variablesFile string
	operationName string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "离线改写GraphQL请求并输出结果",
	Example: `  gqlcf rewrite -q product.graphql
  gqlcf rewrite -q update.graphql -v vars.json -o UpdateProduct`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := readRequest()
		if err != nil {
			return err
		}

		k, err := std.NewKonfig(std.WithFilePath(configFile(cmd)))
		if err != nil {
			return err
		}
		c, err := std.NewConfig(k)
		if err != nil {
			return err
		}
		std.NewLogger(c)

		meta, err := gql.NewMetadata(k, std.NewGraphQLClient(c))
		if err != nil {
			return err
		}
		out, err := gql.NewRewriter(meta, nil).Rewrite(context.Background(), *req)
		if err != nil {
			return err
		}

		data, err := utl.MarshalIndentJSON(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

// readRequest 从文件读取查询和变量
func readRequest() (*gql.Request, error) {
	query, err := os.ReadFile(queryFile)
	if err != nil {
		return nil, fmt.Errorf("读取查询文件失败: %w", err)
	}
	req := &gql.Request{Query: string(query), OperationName: operationName}
	if variablesFile == "" {
		return req, nil
	}
	data, err := os.ReadFile(variablesFile)
	if err != nil {
		return nil, fmt.Errorf("读取变量文件失败: %w", err)
	}
	if err := utl.UnmarshalJSON(data, &req.Variables); err != nil {
		return nil, fmt.Errorf("解析变量文件失败: %w", err)
	}
	return req, nil
}

func init() {
	rewriteCmd.Flags().StringVarP(&queryFile, "query", "q", "", "GraphQL查询文件")
	rewriteCmd.Flags().StringVarP(&variablesFile, "variables", "v", "", "JSON变量文件")
	rewriteCmd.Flags().StringVarP(&operationName, "operation", "o", "", "要执行的操作名")
	_ = rewriteCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(rewriteCmd)
}
