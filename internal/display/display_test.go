package display

import (
	"bytes"
	"database/sql"
	"strings"
	"testing"

	"github.com/quantfish/funddb/internal/store"
)

func text(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestFullEmpty(t *testing.T) {
	var buf bytes.Buffer
	Full(&buf, &store.ResultSet{Columns: []string{"基金代码"}})
	if !strings.Contains(buf.String(), "没有找到数据") {
		t.Errorf("empty result should say 没有找到数据, got %q", buf.String())
	}
}

func TestFullPrintsLabeledFields(t *testing.T) {
	rs := &store.ResultSet{
		Columns: []string{"基金代码", "基金简称", "日增长率"},
		Rows: [][]sql.NullString{
			{text("000001"), text("测试基金"), {}},
		},
	}

	var buf bytes.Buffer
	Full(&buf, rs)
	out := buf.String()

	for _, want := range []string{"基金代码: 000001", "基金简称: 测试基金", "日增长率: None"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSearchResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	SearchResults(&buf, nil)
	if !strings.Contains(buf.String(), "没有找到匹配的基金") {
		t.Errorf("got %q", buf.String())
	}
}

func TestSearchResultsFormatting(t *testing.T) {
	rows := []store.FuzzyRow{
		{
			Code:            "000001",
			ShortName:       "价值精选",
			UnitNetValue:    text("1.2345"),
			DailyGrowthRate: text("0.68%"),
		},
		{
			Code:      "000002",
			ShortName: "缺数据基金",
		},
	}

	var buf bytes.Buffer
	SearchResults(&buf, rows)
	out := buf.String()

	if !strings.Contains(out, "找到 2 个匹配的基金") {
		t.Errorf("missing count header:\n%s", out)
	}
	if !strings.Contains(out, "1.2345") {
		t.Errorf("net value should render with 4 decimals:\n%s", out)
	}
	if !strings.Contains(out, "0.68%") {
		t.Errorf("growth rate should render as percent with 2 decimals:\n%s", out)
	}
	if !strings.Contains(out, "N/A") {
		t.Errorf("missing values should render as N/A:\n%s", out)
	}
}

func TestTruncateName(t *testing.T) {
	short := "短名称基金"
	if got := TruncateName(short); got != short {
		t.Errorf("short name changed: %q", got)
	}

	long := strings.Repeat("长", 35)
	got := TruncateName(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long name should end with ellipsis: %q", got)
	}
	if n := len([]rune(got)); n != NameMaxLen+1 { // 28 runes + "..."
		t.Errorf("truncated length = %d runes, want %d", n, NameMaxLen+1)
	}
}
