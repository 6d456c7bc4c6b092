package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantfish/funddb/internal/facade"
	"github.com/quantfish/funddb/internal/store"
)

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup [目标路径]",
	Short: "备份数据库文件",
	Long: `备份数据库文件。省略目标路径时使用原文件名加时间戳。

这是普通文件复制，备份期间有其他写入方时快照可能不一致。`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackup,
}

func runBackup(cmd *cobra.Command, args []string) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}

	target := ""
	if len(args) == 1 {
		target = args[0]
	}

	f := facade.New(store.Factory{Path: path}, nil)
	fmt.Println(f.Backup(target))
	return nil
}
