package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"
)

const (
	DefaultDelimiter  = ';'
	DefaultDateLayout = "2006-01-02"
)

// Codec reads and writes delimited table files. Cells are kept as raw
// strings on read; typed values are rendered back on write.
type Codec struct {
	Delimiter  rune
	DateLayout string
}

func NewCodec(delimiter rune, dateLayout string) Codec {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	return Codec{Delimiter: delimiter, DateLayout: dateLayout}
}

func (c Codec) ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buffered := bufio.NewReader(f)
	if err := skipBOM(buffered); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	reader := csv.NewReader(buffered)
	reader.Comma = c.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read %s: file has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}

	table := New(header...)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", path, line+1, err)
		}
		line++

		row := make(Row, len(header))
		for i, col := range header {
			if i >= len(record) || record[i] == "" {
				row[col] = nil
				continue
			}
			row[col] = record[i]
		}
		table.Append(row)
	}

	return table, nil
}

func (c Codec) WriteFile(path string, table *Table) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	writer.Comma = c.Delimiter

	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("encode %s header: %w", path, err)
	}

	record := make([]string, len(table.Columns))
	for i, row := range table.Rows {
		for j, col := range table.Columns {
			record[j] = c.FormatCell(row[col])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("encode %s row %d: %w", path, i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// FormatCell renders one typed cell as its file representation. Missing
// cells render as the empty field.
func (c Codec) FormatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case time.Time:
		return value.Format(c.DateLayout)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// Source files occasionally start with a UTF-8 byte order mark left by
// spreadsheet exports. It must not leak into the first column name.
func skipBOM(r *bufio.Reader) error {
	ch, _, err := r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	if ch != '﻿' {
		return r.UnreadRune()
	}
	return nil
}
