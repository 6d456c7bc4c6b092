// Package store persists fund records in a single SQLite table and serves
// the read operations behind the interactive shell.
package store

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/quantfish/funddb/internal/fund"
)

// Factory opens connections to the database file. Components receive a
// Factory instead of a shared handle so each entry point controls its own
// connection lifetime.
type Factory struct {
	Path string
}

// Open opens the database.
func (f Factory) Open() (*DB, error) {
	db, err := f.OpenRaw()
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// OpenRaw opens a bare connection for callers that run their own SQL, like
// the facade.
func (f Factory) OpenRaw() (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	return db, nil
}

// DB wraps a SQLite database connection.
type DB struct {
	db *sqlx.DB
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// EnsureSchema creates the fund table if it doesn't exist. Safe to call on
// every startup.
func (d *DB) EnsureSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS 基金数据 (
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			基金代码 TEXT NOT NULL UNIQUE,
			基金简称 TEXT NOT NULL,
			基金简拼 TEXT,
			更新日期 TEXT,
			单位净值 TEXT,
			累计净值 TEXT,
			日增长率 TEXT,
			近1周收益率 TEXT,
			近1月收益率 TEXT,
			近3月收益率 TEXT,
			近6月收益率 TEXT,
			近1年收益率 TEXT,
			近2年收益率 TEXT,
			近3年收益率 TEXT,
			今年来收益率 TEXT,
			成立来收益率 TEXT,
			发行日期 TEXT,
			是否可购 TEXT,
			自定义2 TEXT,
			自定义3 TEXT,
			手续费 TEXT,
			折扣 TEXT,
			自定义5 TEXT,
			自定义6 TEXT,
			创建时间 TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`

	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// upsertSQL is built once from the shared column list so the writer and the
// schema can't drift apart.
var upsertSQL = fmt.Sprintf(
	"INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
	fund.TableName,
	strings.Join(fund.Columns, ", "),
	strings.TrimSuffix(strings.Repeat("?, ", len(fund.Columns)), ", "),
)

// Upsert inserts a record, replacing any existing row with the same 基金代码.
func (d *DB) Upsert(rec *fund.Record) error {
	if _, err := d.db.Exec(upsertSQL, rec.BindValues()...); err != nil {
		return fmt.Errorf("inserting %s: %w", rec.Code, err)
	}
	return nil
}

// Count returns the number of stored funds.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM 基金数据").Scan(&count)
	return count, err
}
