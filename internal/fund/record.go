// Package fund defines the fund record model and the normalization rules
// applied to raw feed values before storage.
package fund

import (
	"database/sql"
	"fmt"
	"strings"
)

// TableName is the single table holding fund records.
const TableName = "基金数据"

// Columns lists the insertable columns in storage order. ID and 创建时间 are
// managed by SQLite and never bound.
var Columns = []string{
	"基金代码", "基金简称", "基金简拼", "更新日期", "单位净值",
	"累计净值", "日增长率", "近1周收益率", "近1月收益率",
	"近3月收益率", "近6月收益率", "近1年收益率", "近2年收益率",
	"近3年收益率", "今年来收益率", "成立来收益率", "发行日期",
	"是否可购", "自定义2", "自定义3", "手续费", "折扣",
	"自定义5", "自定义6",
}

// Record is one fund row. Optional fields are nullable; Purchasable and
// Discount always resolve to one of the two flag values.
type Record struct {
	Code               string
	ShortName          string
	ShortNamePinyin    sql.NullString
	UpdateDate         sql.NullString
	UnitNetValue       sql.NullString
	CumulativeNetValue sql.NullString
	DailyGrowthRate    sql.NullString
	Return1W           sql.NullString
	Return1M           sql.NullString
	Return3M           sql.NullString
	Return6M           sql.NullString
	Return1Y           sql.NullString
	Return2Y           sql.NullString
	Return3Y           sql.NullString
	ReturnYTD          sql.NullString
	ReturnInception    sql.NullString
	IssueDate          sql.NullString
	Purchasable        Flag
	Custom2            sql.NullString
	Custom3            sql.NullString
	Fee                sql.NullString
	Discount           Flag
	Custom5            sql.NullString
	Custom6            sql.NullString
}

// BindValues returns the record's values in Columns order, ready for
// positional binding.
func (r *Record) BindValues() []interface{} {
	return []interface{}{
		r.Code, r.ShortName, r.ShortNamePinyin, r.UpdateDate, r.UnitNetValue,
		r.CumulativeNetValue, r.DailyGrowthRate, r.Return1W, r.Return1M,
		r.Return3M, r.Return6M, r.Return1Y, r.Return2Y,
		r.Return3Y, r.ReturnYTD, r.ReturnInception, r.IssueDate,
		r.Purchasable.String(), r.Custom2, r.Custom3, r.Fee, r.Discount.String(),
		r.Custom5, r.Custom6,
	}
}

// FromRaw builds a Record from one decoded JSONL object. Input keys follow
// the upstream feed, which abbreviates the period-return names (近1周 on the
// wire becomes the 近1周收益率 column).
func FromRaw(raw map[string]interface{}) (*Record, error) {
	get := func(key string) string { return rawString(raw[key]) }

	code := strings.TrimSpace(get("基金代码"))
	if code == "" {
		return nil, fmt.Errorf("缺少基金代码")
	}
	name := strings.TrimSpace(get("基金简称"))
	if name == "" {
		return nil, fmt.Errorf("基金 %s 缺少基金简称", code)
	}

	return &Record{
		Code:               code,
		ShortName:          name,
		ShortNamePinyin:    CleanEmpty(get("基金简拼")),
		UpdateDate:         CleanEmpty(get("更新日期")),
		UnitNetValue:       CleanEmpty(stripPercent(get("单位净值"))),
		CumulativeNetValue: CleanEmpty(stripPercent(get("累计净值"))),
		DailyGrowthRate:    CleanEmpty(get("日增长率")),
		Return1W:           CleanEmpty(get("近1周")),
		Return1M:           CleanEmpty(get("近1月")),
		Return3M:           CleanEmpty(get("近3月")),
		Return6M:           CleanEmpty(get("近6月")),
		Return1Y:           CleanEmpty(get("近1年")),
		Return2Y:           CleanEmpty(get("近2年")),
		Return3Y:           CleanEmpty(get("近3年")),
		ReturnYTD:          CleanEmpty(get("今年来")),
		ReturnInception:    CleanEmpty(get("成立来")),
		IssueDate:          CleanEmpty(get("发行日期")),
		Purchasable:        CleanFlag(get("是否可购")),
		Custom2:            CleanEmpty(get("自定义2")),
		Custom3:            CleanEmpty(get("自定义3")),
		Fee:                CleanEmpty(get("手续费")),
		Discount:           CleanFlag(get("折扣")),
		Custom5:            CleanEmpty(get("自定义5")),
		Custom6:            CleanEmpty(get("自定义6")),
	}, nil
}

// rawString coerces a decoded JSON value to text. null becomes the empty
// string, which the cleaners treat as absent.
func rawString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; keep integer-looking values short.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func stripPercent(s string) string {
	return strings.ReplaceAll(s, "%", "")
}
