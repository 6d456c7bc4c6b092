package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantfish/funddb/internal/loader"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load <file.jsonl>",
	Short: "从JSONL文件批量导入基金数据",
	Long: `从JSONL文件批量导入基金数据，每行一个JSON对象。

相同基金代码的记录会被整行替换。无法解析或写入失败的行会被
记录并跳过，导入始终运行到文件末尾。`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := loader.LoadFile(args[0], db, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("导入完成：成功 %d 条，失败 %d 条，共 %d 条\n", res.Loaded, res.Failed, res.Total)

	count, err := db.Count()
	if err != nil {
		return err
	}
	fmt.Printf("数据库当前共有 %d 条基金记录\n", count)
	return nil
}
