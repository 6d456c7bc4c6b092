// Package main provides the funddb-mcp MCP server entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantfish/funddb/internal/config"
	"github.com/quantfish/funddb/internal/facade"
	"github.com/quantfish/funddb/internal/mcpserver"
	"github.com/quantfish/funddb/internal/store"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	dbPathFlag string
	portFlag   int
	debugFlag  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "funddb-mcp",
	Short: "基金数据库MCP服务",
	Long: `funddb-mcp 通过SSE暴露四个MCP工具：execute_sql、get_table_name、
get_table_desc 和 backup_database，直接操作基金SQLite数据库文件。

SQL执行失败不会中断调用：所有错误都编码在返回文本中。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "数据库文件路径")
	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 0, "SSE监听端口")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "输出调试日志")
	rootCmd.Version = Version
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dbPathFlag != "" {
		cfg.DBPath = dbPathFlag
	}
	if portFlag != 0 {
		cfg.Port = portFlag
	}

	log, err := newLogger(debugFlag)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	if err := config.EnsureDBDir(cfg.DBPath); err != nil {
		return err
	}
	fmt.Printf("SQLite数据库路径: %s\n", cfg.DBPath)

	f := facade.New(store.Factory{Path: cfg.DBPath}, log)
	srv := mcpserver.New(f, Version)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("MCP服务启动",
		zap.String("addr", addr),
		zap.String("db", cfg.DBPath))

	return mcpserver.ServeSSE(srv, addr)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
