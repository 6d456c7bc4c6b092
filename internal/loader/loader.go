// Package loader bulk-loads newline-delimited JSON fund records.
package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/quantfish/funddb/internal/fund"
	"github.com/quantfish/funddb/internal/store"
)

// MaxLineCapacity is the maximum buffer size for reading JSONL lines (1MB
// per line).
const MaxLineCapacity = 1024 * 1024

// Result summarizes a bulk load.
type Result struct {
	Total  int // non-empty lines seen
	Loaded int
	Failed int
}

// LoadFile reads one JSON object per line and upserts each into the store.
// Bad lines (malformed JSON, missing required fields, write failures) are
// reported on logw and counted; the load always runs to the end of the file.
// Only failure to open or read the file itself is returned as an error.
func LoadFile(path string, db *store.DB, logw io.Writer) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, db, logw)
}

// Load is the reader-based form of LoadFile.
func Load(r io.Reader, db *store.DB, logw io.Writer) (Result, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, MaxLineCapacity)
	scanner.Buffer(buf, MaxLineCapacity)

	var res Result
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		res.Total++

		rec, err := decodeLine(line)
		if err == nil {
			fmt.Fprintf(logw, "正在插入基金数据: %s - %s\n", rec.Code, rec.ShortName)
			err = db.Upsert(rec)
		}
		if err != nil {
			// Absorb and keep loading.
			fmt.Fprintf(logw, "插入数据时出错：%v\n", err)
			fmt.Fprintf(logw, "问题数据: %s\n", line)
			res.Failed++
			continue
		}
		res.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading input: %w", err)
	}

	return res, nil
}

func decodeLine(line []byte) (*fund.Record, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("解析JSON失败: %w", err)
	}
	return fund.FromRaw(raw)
}
