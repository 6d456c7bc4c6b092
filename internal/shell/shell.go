// Package shell runs the interactive fund search menu.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quantfish/funddb/internal/display"
	"github.com/quantfish/funddb/internal/store"
)

// Run drives the menu loop until the user exits or input ends. Invalid
// choices re-prompt; query errors are reported and the loop continues.
func Run(db *store.DB, r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)

	for {
		fmt.Fprintln(w, "\n"+strings.Repeat("=", 50))
		fmt.Fprintln(w, "基金搜索系统")
		fmt.Fprintln(w, "1. 按基金代码精确查询")
		fmt.Fprintln(w, "2. 按基金名称模糊查询")
		fmt.Fprintln(w, "3. 显示所有基金")
		fmt.Fprintln(w, "4. 退出")
		fmt.Fprint(w, "请选择操作 (1-4): ")

		choice, ok := readLine(in)
		if !ok {
			return in.Err()
		}

		switch choice {
		case "1":
			exactLookup(db, in, w)
		case "2":
			fuzzyLookup(db, in, w)
		case "3":
			showAll(db, w)
		case "4":
			fmt.Fprintln(w, "退出搜索系统")
			return nil
		default:
			fmt.Fprintln(w, "无效选择，请重新输入")
		}
	}
}

func exactLookup(db *store.DB, in *bufio.Scanner, w io.Writer) {
	fmt.Fprint(w, "请输入基金代码: ")
	code, ok := readLine(in)
	if !ok || code == "" {
		fmt.Fprintln(w, "基金代码不能为空")
		return
	}

	showDetail(db, w, code)
}

func fuzzyLookup(db *store.DB, in *bufio.Scanner, w io.Writer) {
	fmt.Fprint(w, "请输入基金名称关键词: ")
	keyword, ok := readLine(in)
	if !ok || keyword == "" {
		fmt.Fprintln(w, "关键词不能为空")
		return
	}

	rows, err := db.FuzzySearch(keyword)
	if err != nil {
		fmt.Fprintf(w, "查询出错：%v\n", err)
		return
	}
	display.SearchResults(w, rows)

	switch {
	case len(rows) == 1:
		// Single hit: offer to drill into the full record.
		fmt.Fprint(w, "是否查看详细信息? (y/n): ")
		answer, _ := readLine(in)
		if strings.ToLower(answer) == "y" {
			showDetail(db, w, rows[0].Code)
		}
	case len(rows) > 1:
		fmt.Fprint(w, "请输入要查看详细信息的基金代码: ")
		code, _ := readLine(in)
		if code != "" {
			showDetail(db, w, code)
		}
	}
}

func showAll(db *store.DB, w io.Writer) {
	rs, err := db.List()
	if err != nil {
		fmt.Fprintf(w, "查询出错：%v\n", err)
		return
	}
	display.Full(w, rs)
}

func showDetail(db *store.DB, w io.Writer, code string) {
	rs, err := db.GetByCode(code)
	if err != nil {
		fmt.Fprintf(w, "查询出错：%v\n", err)
		return
	}
	display.Full(w, rs)
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
