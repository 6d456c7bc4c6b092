// Package display formats query results for the terminal.
package display

import (
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/quantfish/funddb/internal/fund"
	"github.com/quantfish/funddb/internal/store"
)

const (
	// NameMaxLen is the display cutoff for fund names in the search table.
	NameMaxLen = 30

	fullSeparator   = 100
	searchSeparator = 80
)

// Full prints every field of every row, one labeled line per field.
func Full(w io.Writer, rs *store.ResultSet) {
	if rs == nil || rs.Empty() {
		fmt.Fprintln(w, "没有找到数据")
		return
	}

	fmt.Fprintln(w, "\n基金数据：")
	fmt.Fprintln(w, strings.Repeat("-", fullSeparator))
	for _, row := range rs.Rows {
		for i, v := range row {
			if v.Valid {
				fmt.Fprintf(w, "%s: %s\n", rs.Columns[i], v.String)
			} else {
				fmt.Fprintf(w, "%s: None\n", rs.Columns[i])
			}
		}
		fmt.Fprintln(w, strings.Repeat("-", fullSeparator))
	}
}

// SearchResults prints the condensed fuzzy-search table.
func SearchResults(w io.Writer, rows []store.FuzzyRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "没有找到匹配的基金")
		return
	}

	fmt.Fprintf(w, "\n找到 %d 个匹配的基金：\n", len(rows))
	fmt.Fprintln(w, strings.Repeat("=", searchSeparator))
	fmt.Fprintf(w, "%-10s %-30s %-10s %-10s\n", "基金代码", "基金简称", "单位净值", "日增长率")
	fmt.Fprintln(w, strings.Repeat("-", searchSeparator))

	for _, r := range rows {
		fmt.Fprintf(w, "%-10s %-30s %-10s %-10s\n",
			r.Code,
			TruncateName(r.ShortName),
			formatNetValue(r.UnitNetValue),
			formatGrowthRate(r.DailyGrowthRate))
	}
}

// TruncateName shortens names longer than NameMaxLen, rune-aware for CJK
// text.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= NameMaxLen {
		return name
	}
	return string(runes[:NameMaxLen-2]) + "..."
}

// formatGrowthRate renders a stored rate as a percentage with two decimals,
// or N/A when absent or unparsable.
func formatGrowthRate(v sql.NullString) string {
	if !v.Valid {
		return "N/A"
	}
	rate := fund.CleanPercentage(v.String)
	if !rate.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", rate.Float64*100)
}

// formatNetValue renders a stored net value with four decimals, or N/A.
func formatNetValue(v sql.NullString) string {
	if !v.Valid {
		return "N/A"
	}
	val := fund.CleanNumeric(v.String)
	if !val.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", val.Float64)
}
