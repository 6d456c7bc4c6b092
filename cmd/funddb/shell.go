package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quantfish/funddb/internal/shell"
)

func init() {
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "启动交互式基金搜索菜单",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	return shell.Run(db, os.Stdin, os.Stdout)
}
