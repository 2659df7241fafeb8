// Package tabular reads delimited and plain-text files into extraction
// cells. Rows and columns are 1-indexed; plain text is one cell per line in
// column 1. Blank cells are skipped.
package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fyrsmithlabs/coinscan/internal/extraction"
)

// Format selects how a file is split into cells.
type Format int

const (
	FormatText Format = iota
	FormatCSV
	FormatTSV
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return "text"
	}
}

// MaxLineSize bounds a single plain-text line.
const MaxLineSize = 4 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FormatFor picks a format from the file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".tsv", ".tab":
		return FormatTSV
	default:
		return FormatText
	}
}

// ReadFile reads path with the format implied by its extension. Cells are
// labelled with the file's base name.
func ReadFile(path string) ([]extraction.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cells, err := Read(f, filepath.Base(path), FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cells, nil
}

// Read splits r into cells labelled with name.
func Read(r io.Reader, name string, format Format) ([]extraction.Cell, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	switch format {
	case FormatCSV:
		return readDelimited(br, name, ',')
	case FormatTSV:
		return readDelimited(br, name, '\t')
	default:
		return readLines(br, name)
	}
}

func readDelimited(r io.Reader, name string, comma rune) ([]extraction.Cell, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var cells []extraction.Cell
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return cells, nil
		}
		if err != nil {
			return nil, err
		}
		for i, field := range rec {
			if strings.TrimSpace(field) == "" {
				continue
			}
			cells = append(cells, extraction.Cell{Text: field, File: name, Row: row, Column: i + 1})
		}
	}
}

func readLines(r io.Reader, name string) ([]extraction.Cell, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var cells []extraction.Cell
	for row := 1; sc.Scan(); row++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells = append(cells, extraction.Cell{Text: line, File: name, Row: row, Column: 1})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cells, nil
}
