// Package main provides the funddb CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantfish/funddb/internal/config"
	"github.com/quantfish/funddb/internal/store"
)

// Version is set at build time via ldflags
var Version = "dev"

// dbPathFlag overrides the configured database path.
var dbPathFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "funddb",
	Short: "基金数据命令行工具",
	Long: `funddb 管理单表SQLite基金数据库。

它从JSONL文件批量导入基金记录，并提供精确查询、模糊搜索和
交互式检索菜单。数据库路径来自 --db 标志、SQLITE_DB_PATH 环境
变量或全局配置文件，默认为当前目录下的 fund_data.db。`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "数据库文件路径")
	rootCmd.Version = Version
}

// resolveDBPath applies the flag override on top of the configured path.
func resolveDBPath() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if dbPathFlag != "" {
		return dbPathFlag, nil
	}
	return cfg.DBPath, nil
}

// openDB resolves the path, makes sure its directory and schema exist, and
// opens the store.
func openDB() (*store.DB, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDBDir(path); err != nil {
		return nil, err
	}

	db, err := store.Factory{Path: path}.Open()
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
