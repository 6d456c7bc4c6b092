package facade

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quantfish/funddb/internal/fund"
	"github.com/quantfish/funddb/internal/store"
)

func newTestFacade(t *testing.T) (*Facade, store.Factory) {
	t.Helper()
	factory := store.Factory{Path: filepath.Join(t.TempDir(), "fund_data.db")}

	db, err := factory.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := db.EnsureSchema(); err != nil {
		t.Fatal(err)
	}
	if err := db.Upsert(&fund.Record{Code: "000001", ShortName: "测试基金"}); err != nil {
		t.Fatal(err)
	}

	return New(factory, nil), factory
}

func TestExecuteSQLSelect(t *testing.T) {
	f, _ := newTestFacade(t)

	out := f.ExecuteSQL(context.Background(), "SELECT 基金代码, 基金简称 FROM 基金数据")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %q", out)
	}
	if lines[0] != "基金代码,基金简称" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "000001,测试基金" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExecuteSQLNullLiteral(t *testing.T) {
	f, _ := newTestFacade(t)

	out := f.ExecuteSQL(context.Background(), "SELECT 基金代码, 基金简拼 FROM 基金数据")
	if !strings.Contains(out, "000001,NULL") {
		t.Errorf("null column should render as NULL literal: %q", out)
	}
}

func TestExecuteSQLMultiStatementWithError(t *testing.T) {
	f, _ := newTestFacade(t)

	out := f.ExecuteSQL(context.Background(), "SELECT 1; SELECT bogus_column FROM no_such_table")
	segments := strings.Split(out, "\n---\n")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments separated by ---, got %d: %q", len(segments), out)
	}
	if !strings.HasPrefix(segments[0], "1\n") {
		t.Errorf("first segment should be a one-row CSV: %q", segments[0])
	}
	if !strings.Contains(segments[1], "出错") {
		t.Errorf("second segment should carry the inline error: %q", segments[1])
	}
}

func TestExecuteSQLInsertReportsAffected(t *testing.T) {
	f, _ := newTestFacade(t)

	out := f.ExecuteSQL(context.Background(),
		"INSERT OR REPLACE INTO 基金数据 (基金代码, 基金简称) VALUES ('000002', '新基金')")
	if !strings.Contains(out, "查询执行成功。影响行数: 1") {
		t.Errorf("insert should report affected rows: %q", out)
	}
}

func TestExecuteSQLBareInsertUniquenessViolation(t *testing.T) {
	f, _ := newTestFacade(t)

	// A bare INSERT on an existing code must fail with a constraint error,
	// captured inline.
	out := f.ExecuteSQL(context.Background(),
		"INSERT INTO 基金数据 (基金代码, 基金简称) VALUES ('000001', '重复基金')")
	if !strings.Contains(out, "出错") {
		t.Errorf("duplicate insert should be an inline error: %q", out)
	}

	// The original row is untouched.
	check := f.ExecuteSQL(context.Background(),
		"SELECT 基金简称 FROM 基金数据 WHERE 基金代码 = '000001'")
	if !strings.Contains(check, "测试基金") {
		t.Errorf("original row should survive: %q", check)
	}
}

func TestExecuteSQLEmptyStatementsSkipped(t *testing.T) {
	f, _ := newTestFacade(t)

	out := f.ExecuteSQL(context.Background(), "SELECT 1;;  ;")
	if strings.Contains(out, "---") {
		t.Errorf("blank statements should not produce segments: %q", out)
	}
}

func TestTableNames(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	out := f.TableNames(ctx, "")
	if !strings.Contains(out, "table_name") || !strings.Contains(out, "基金数据") {
		t.Errorf("unfiltered listing missing fund table: %q", out)
	}

	out = f.TableNames(ctx, "基金")
	if !strings.Contains(out, "基金数据") {
		t.Errorf("filtered listing missing fund table: %q", out)
	}

	out = f.TableNames(ctx, "不存在的表")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 || lines[0] != "table_name" {
		t.Errorf("no-match filter should return header only: %q", out)
	}

	// A hostile filter is bound as a parameter, not interpolated.
	out = f.TableNames(ctx, "x' OR '1'='1")
	if strings.Contains(out, "基金数据") {
		t.Errorf("injection attempt should match nothing: %q", out)
	}
}

func TestTableDesc(t *testing.T) {
	f, _ := newTestFacade(t)
	ctx := context.Background()

	out := f.TableDesc(ctx, "基金数据")
	for _, col := range []string{"name", "type", "基金代码", "创建时间"} {
		if !strings.Contains(out, col) {
			t.Errorf("table description missing %q: %q", col, out)
		}
	}

	out = f.TableDesc(ctx, "no_such_table")
	if !strings.Contains(out, "不存在") {
		t.Errorf("unknown table should report 不存在: %q", out)
	}

	out = f.TableDesc(ctx, `基金数据"; DROP TABLE 基金数据; --`)
	if !strings.Contains(out, "不存在") {
		t.Errorf("malformed identifier should be rejected: %q", out)
	}
}

func TestBackupDefaultPath(t *testing.T) {
	f, factory := newTestFacade(t)

	out := f.Backup("")
	if !strings.Contains(out, "数据库备份成功") {
		t.Fatalf("backup failed: %q", out)
	}

	dir := filepath.Dir(factory.Path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range entries {
		if strings.Contains(e.Name(), "_backup_") && strings.HasSuffix(e.Name(), ".db") {
			found = true
		}
	}
	if !found {
		t.Errorf("no timestamped backup file in %s", dir)
	}
}

func TestBackupExplicitPath(t *testing.T) {
	f, factory := newTestFacade(t)

	dst := filepath.Join(filepath.Dir(factory.Path), "copy.db")
	out := f.Backup(dst)
	if !strings.Contains(out, dst) {
		t.Fatalf("backup message should name the path: %q", out)
	}

	src, err := os.ReadFile(factory.Path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || len(got) != len(src) {
		t.Errorf("backup size = %d, source = %d", len(got), len(src))
	}
}

func TestBackupMissingSource(t *testing.T) {
	f := New(store.Factory{Path: filepath.Join(t.TempDir(), "absent.db")}, nil)
	out := f.Backup("")
	if !strings.Contains(out, "备份失败") {
		t.Errorf("missing source should report 备份失败: %q", out)
	}
}
