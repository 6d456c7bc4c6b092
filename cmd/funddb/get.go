package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quantfish/funddb/internal/display"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <基金代码>",
	Short: "按基金代码精确查询",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rs, err := db.GetByCode(args[0])
	if err != nil {
		return err
	}
	display.Full(os.Stdout, rs)
	return nil
}
