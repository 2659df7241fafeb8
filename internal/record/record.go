// Package record defines the flat result type produced for each detected
// address.
package record

import (
	"fmt"
	"strings"
)

// ExtractedAddress is one accepted address occurrence.
//
// Extraction creates it; deduplication sets IsDuplicate and DuplicateCount
// once. Nothing else mutates it.
type ExtractedAddress struct {
	Address        string  `json:"address"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	File           string  `json:"file"`
	Sheet          string  `json:"sheet,omitempty"`
	Row            int     `json:"row"`
	Column         int     `json:"column"`
	Confidence     float64 `json:"confidence"`
	Classification string  `json:"classification,omitempty"`
	IsDuplicate    bool    `json:"is_duplicate"`
	DuplicateCount int     `json:"duplicate_count"`
}

// Key identifies a record within a run.
type Key struct {
	File    string
	Sheet   string
	Row     int
	Column  int
	Address string
}

// Key returns the record's identity.
func (r *ExtractedAddress) Key() Key {
	return Key{File: r.File, Sheet: r.Sheet, Row: r.Row, Column: r.Column, Address: r.Address}
}

// GroupKey is the duplicate-detection identity: the same address,
// ignoring case, in the same file and sheet.
type GroupKey struct {
	File    string
	Sheet   string
	Address string
}

// GroupKey returns the duplicate group this record belongs to.
func (r *ExtractedAddress) GroupKey() GroupKey {
	return GroupKey{File: r.File, Sheet: r.Sheet, Address: strings.ToLower(r.Address)}
}

// Location renders the record's position for messages and reports.
func (r *ExtractedAddress) Location() string {
	if r.Sheet != "" {
		return fmt.Sprintf("%s [%s] R%dC%d", r.File, r.Sheet, r.Row, r.Column)
	}
	return fmt.Sprintf("%s R%dC%d", r.File, r.Row, r.Column)
}

// Less orders records by file, sheet, row, column, then address.
func Less(a, b *ExtractedAddress) bool {
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Sheet != b.Sheet {
		return a.Sheet < b.Sheet
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Column != b.Column {
		return a.Column < b.Column
	}
	if a.Address != b.Address {
		return a.Address < b.Address
	}
	return a.Symbol < b.Symbol
}
