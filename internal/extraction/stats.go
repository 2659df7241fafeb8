package extraction

import (
	"github.com/fyrsmithlabs/coinscan/internal/dedupe"
	"github.com/fyrsmithlabs/coinscan/internal/record"
)

// Statistics summarizes a set of records.
type Statistics struct {
	Total      int `json:"total"`
	Unique     int `json:"unique"`
	Duplicates int `json:"duplicates"`
	// FilesProcessed and SheetsProcessed count sources that produced at
	// least one record. Sheets are counted per file.
	FilesProcessed  int `json:"files_processed"`
	SheetsProcessed int `json:"sheets_processed"`

	BySymbol map[string]int `json:"by_symbol"`
	ByName   map[string]int `json:"by_name"`
	ByFile   map[string]int `json:"by_file"`
	// UniqueBySource counts distinct lower-cased addresses per file or
	// file/sheet pair, keyed by dedupe.Source.
	UniqueBySource map[string]int `json:"unique_by_source"`

	Duplicate dedupe.Summary `json:"duplicate_summary"`
}

// Compute derives Statistics from records. Unique and Duplicates read the
// duplicate flags, so records should already have been through dedupe.Mark.
func Compute(records []*record.ExtractedAddress) Statistics {
	s := Statistics{
		Total:          len(records),
		BySymbol:       make(map[string]int),
		ByName:         make(map[string]int),
		ByFile:         make(map[string]int),
		UniqueBySource: make(map[string]int),
	}

	type sheetKey struct{ file, sheet string }
	sheets := make(map[sheetKey]struct{})
	seen := make(map[record.GroupKey]struct{})

	for _, r := range records {
		if r.IsDuplicate {
			s.Duplicates++
		} else {
			s.Unique++
		}
		s.BySymbol[r.Symbol]++
		s.ByName[r.Name]++
		s.ByFile[r.File]++
		if r.Sheet != "" {
			sheets[sheetKey{r.File, r.Sheet}] = struct{}{}
		}
		if _, ok := seen[r.GroupKey()]; !ok {
			seen[r.GroupKey()] = struct{}{}
			s.UniqueBySource[dedupe.Source(r.File, r.Sheet)]++
		}
	}

	s.FilesProcessed = len(s.ByFile)
	s.SheetsProcessed = len(sheets)
	s.Duplicate = dedupe.Summarize(records)
	return s
}

// GroupBySymbol buckets records by currency symbol, keeping their order.
func GroupBySymbol(records []*record.ExtractedAddress) map[string][]*record.ExtractedAddress {
	out := make(map[string][]*record.ExtractedAddress)
	for _, r := range records {
		out[r.Symbol] = append(out[r.Symbol], r)
	}
	return out
}

// GroupByFile buckets records by source file, keeping their order.
func GroupByFile(records []*record.ExtractedAddress) map[string][]*record.ExtractedAddress {
	out := make(map[string][]*record.ExtractedAddress)
	for _, r := range records {
		out[r.File] = append(out[r.File], r)
	}
	return out
}
