package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quantfish/funddb/internal/display"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "显示所有基金",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rs, err := db.List()
	if err != nil {
		return err
	}
	display.Full(os.Stdout, rs)
	return nil
}
