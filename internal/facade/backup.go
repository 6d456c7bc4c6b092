package facade

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Backup copies the database file to backupPath, defaulting to
// <base>_backup_<timestamp>.db next to the original. This is a raw file
// copy, not a hot database backup; a concurrent writer can leave the copy
// inconsistent.
func (f *Facade) Backup(backupPath string) string {
	if backupPath == "" {
		base := strings.TrimSuffix(f.factory.Path, filepath.Ext(f.factory.Path))
		backupPath = fmt.Sprintf("%s_backup_%s.db", base, time.Now().Format("20060102_150405"))
	}

	if err := copyFile(f.factory.Path, backupPath); err != nil {
		f.log.Error("backup_database 失败", zap.String("path", backupPath), zap.Error(err))
		return fmt.Sprintf("备份失败: %v", err)
	}

	f.log.Info("backup_database", zap.String("path", backupPath))
	return fmt.Sprintf("数据库备份成功: %s", backupPath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// Best effort at preserving the original timestamps.
	_ = os.Chtimes(dst, time.Now(), info.ModTime())
	return nil
}
