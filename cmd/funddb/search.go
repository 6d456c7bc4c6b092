package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quantfish/funddb/internal/display"
)

// searchFull switches the search output from the condensed table to full
// rows.
var searchFull bool

func init() {
	searchCmd.Flags().BoolVar(&searchFull, "full", false, "显示完整字段而不是简表")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <关键词>",
	Short: "按名称、简拼或代码模糊搜索基金",
	Long: `按名称、简拼或代码模糊搜索基金。

默认输出基金代码、简称、简拼、单位净值和日增长率的简表；
--full 按基金简称匹配并打印完整字段。`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if searchFull {
		rs, err := db.SearchByName(args[0])
		if err != nil {
			return err
		}
		display.Full(os.Stdout, rs)
		return nil
	}

	rows, err := db.FuzzySearch(args[0])
	if err != nil {
		return err
	}
	display.SearchResults(os.Stdout, rows)
	return nil
}
