package store

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ResultSet carries column names alongside generically scanned rows, NULLs
// preserved.
type ResultSet struct {
	Columns []string
	Rows    [][]sql.NullString
}

// Empty reports whether the result holds no rows.
func (rs *ResultSet) Empty() bool {
	return len(rs.Rows) == 0
}

// FuzzyRow is the condensed projection returned by FuzzySearch.
type FuzzyRow struct {
	Code            string
	ShortName       string
	Pinyin          sql.NullString
	UnitNetValue    sql.NullString
	DailyGrowthRate sql.NullString
}

// GetByCode returns the full row for an exact 基金代码 match, at most one row.
func (d *DB) GetByCode(code string) (*ResultSet, error) {
	return d.queryAll("SELECT * FROM 基金数据 WHERE 基金代码 = ?", code)
}

// SearchByName returns full rows whose 基金简称 contains the keyword, ordered
// by 基金代码.
func (d *DB) SearchByName(keyword string) (*ResultSet, error) {
	return d.queryAll(
		"SELECT * FROM 基金数据 WHERE 基金简称 LIKE ? ORDER BY 基金代码",
		"%"+keyword+"%")
}

// List returns every row, ordered by 基金代码.
func (d *DB) List() (*ResultSet, error) {
	return d.queryAll("SELECT * FROM 基金数据 ORDER BY 基金代码")
}

// FuzzySearch matches the keyword against name, pinyin, or code and returns
// the condensed five-column projection, ordered by 基金代码.
func (d *DB) FuzzySearch(keyword string) ([]FuzzyRow, error) {
	pattern := "%" + keyword + "%"
	rows, err := d.db.Query(`
		SELECT 基金代码, 基金简称, 基金简拼, 单位净值, 日增长率
		FROM 基金数据
		WHERE 基金简称 LIKE ? OR 基金简拼 LIKE ? OR 基金代码 LIKE ?
		ORDER BY 基金代码
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("fuzzy search: %w", err)
	}
	defer rows.Close()

	var results []FuzzyRow
	for rows.Next() {
		var r FuzzyRow
		if err := rows.Scan(&r.Code, &r.ShortName, &r.Pinyin, &r.UnitNetValue, &r.DailyGrowthRate); err != nil {
			return nil, fmt.Errorf("scanning fuzzy row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// queryAll runs a query and scans every row generically, keeping the column
// order the engine reports.
func (d *DB) queryAll(query string, args ...interface{}) (*ResultSet, error) {
	rows, err := d.db.Queryx(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying funds: %w", err)
	}
	defer rows.Close()

	return scanResultSet(rows)
}

func scanResultSet(rows *sqlx.Rows) (*ResultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	rs := &ResultSet{Columns: cols}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make([]sql.NullString, len(vals))
		for i, v := range vals {
			row[i] = nullableText(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, rows.Err()
}

// nullableText renders a driver value as text, keeping NULL distinct.
func nullableText(v interface{}) sql.NullString {
	switch t := v.(type) {
	case nil:
		return sql.NullString{}
	case []byte:
		return sql.NullString{String: string(t), Valid: true}
	case string:
		return sql.NullString{String: t, Valid: true}
	default:
		return sql.NullString{String: fmt.Sprintf("%v", t), Valid: true}
	}
}
