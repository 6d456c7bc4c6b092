// Package facade exposes raw SQL execution, catalog search, table
// introspection, and database backup for the MCP server. All failures are
// rendered into the returned text; no operation raises to the transport.
package facade

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/quantfish/funddb/internal/store"
)

// segmentSeparator joins per-statement outputs.
const segmentSeparator = "\n---\n"

// Facade runs SQL against the fund database. Each call opens its own
// connection through the factory; SQLite's file locking is the only
// coordination with other writers.
type Facade struct {
	factory store.Factory
	log     *zap.Logger
}

// New creates a Facade over the database at the factory's path.
func New(factory store.Factory, log *zap.Logger) *Facade {
	if log == nil {
		log = zap.NewNop()
	}
	return &Facade{factory: factory, log: log}
}

// ExecuteSQL splits the query on semicolons and executes each statement in
// sequence. Statements producing rows render as CSV with a NULL literal for
// nulls; others report the affected-row count. One statement's failure is
// reported inline and does not stop the rest.
func (f *Facade) ExecuteSQL(ctx context.Context, query string) string {
	start := time.Now()
	db, err := f.open()
	if err != nil {
		f.log.Error("打开数据库失败", zap.Error(err))
		return fmt.Sprintf("执行查询时出错: %v", err)
	}
	defer db.Close()

	var segments []string
	for _, raw := range strings.Split(query, ";") {
		stmt := strings.TrimSpace(raw)
		if stmt == "" {
			continue
		}
		segments = append(segments, f.runStatement(ctx, db, stmt))
	}

	f.log.Info("execute_sql",
		zap.String("query", query),
		zap.Int("statements", len(segments)),
		zap.Duration("elapsed", time.Since(start)))

	return strings.Join(segments, segmentSeparator)
}

// TableNames lists table names from the catalog, substring-filtered when
// text is non-empty. The filter is bound as a LIKE parameter rather than
// interpolated.
func (f *Facade) TableNames(ctx context.Context, text string) string {
	db, err := f.open()
	if err != nil {
		f.log.Error("打开数据库失败", zap.Error(err))
		return fmt.Sprintf("执行查询时出错: %v", err)
	}
	defer db.Close()

	query := "SELECT name as table_name FROM sqlite_master WHERE type='table'"
	var args []interface{}
	if text != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+text+"%")
	}

	f.log.Info("get_table_name", zap.String("filter", text))
	return f.renderQuery(ctx, db, query, args...)
}

// TableDesc returns column metadata for a table via PRAGMA table_info. The
// name is checked against the catalog first, so malformed or unknown
// identifiers come back as an inline error instead of reaching the engine
// unquoted.
func (f *Facade) TableDesc(ctx context.Context, tableName string) string {
	db, err := f.open()
	if err != nil {
		f.log.Error("打开数据库失败", zap.Error(err))
		return fmt.Sprintf("执行查询时出错: %v", err)
	}
	defer db.Close()

	name := strings.TrimSpace(tableName)
	var exists int
	err = db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = ?", name).Scan(&exists)
	if err != nil {
		return fmt.Sprintf("执行查询时出错: %v", err)
	}
	if exists == 0 {
		f.log.Warn("get_table_desc: 表不存在", zap.String("table", name))
		return fmt.Sprintf("表 '%s' 不存在", name)
	}

	f.log.Info("get_table_desc", zap.String("table", name))
	return f.renderQuery(ctx, db,
		fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(name)))
}

func (f *Facade) open() (*sqlx.DB, error) {
	return f.factory.OpenRaw()
}

// runStatement executes one statement and renders its outcome as text.
func (f *Facade) runStatement(ctx context.Context, db *sqlx.DB, stmt string) string {
	if returnsRows(stmt) {
		return f.renderQuery(ctx, db, stmt)
	}

	res, err := db.ExecContext(ctx, stmt)
	if err != nil {
		f.log.Warn("语句执行失败", zap.String("statement", stmt), zap.Error(err))
		return fmt.Sprintf("执行语句 '%s' 出错: %v", stmt, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		affected = 0
	}
	return fmt.Sprintf("查询执行成功。影响行数: %d", affected)
}

// renderQuery runs a row-producing statement and formats the result set as
// CSV: a header of column names, one line per row, NULL for null values.
func (f *Facade) renderQuery(ctx context.Context, db *sqlx.DB, stmt string, args ...interface{}) string {
	rows, err := db.QueryxContext(ctx, stmt, args...)
	if err != nil {
		f.log.Warn("语句执行失败", zap.String("statement", stmt), zap.Error(err))
		return fmt.Sprintf("执行语句 '%s' 出错: %v", stmt, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Sprintf("执行语句 '%s' 出错: %v", stmt, err)
	}

	lines := []string{strings.Join(cols, ",")}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return fmt.Sprintf("执行语句 '%s' 出错: %v", stmt, err)
		}
		fields := make([]string, len(vals))
		for i, v := range vals {
			fields[i] = fieldText(v)
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	if err := rows.Err(); err != nil {
		return fmt.Sprintf("执行语句 '%s' 出错: %v", stmt, err)
	}

	return strings.Join(lines, "\n")
}

// returnsRows reports whether a statement produces a result set. SQLite
// reports no description for DML/DDL, which maps to the leading keyword
// here.
func returnsRows(stmt string) bool {
	first := strings.ToUpper(firstWord(stmt))
	switch first {
	case "SELECT", "PRAGMA", "WITH", "EXPLAIN", "VALUES":
		return true
	}
	return false
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func fieldText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

// quoteIdent double-quotes an identifier, escaping embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
