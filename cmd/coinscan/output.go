package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fyrsmithlabs/coinscan/internal/enrichment"
	"github.com/fyrsmithlabs/coinscan/internal/extraction"
	"github.com/fyrsmithlabs/coinscan/internal/record"
)

// outputRecord is a record with its enrichment attributes attached.
type outputRecord struct {
	*record.ExtractedAddress
	Attributes enrichment.Attributes `json:"attributes,omitempty"`
}

type outputDocument struct {
	RunID      string                `json:"run_id"`
	Records    []outputRecord        `json:"records"`
	Statistics extraction.Statistics `json:"statistics"`
}

func writeJSON(w io.Writer, result *extraction.Result, table *enrichment.Table) error {
	doc := outputDocument{
		RunID:      result.RunID,
		Records:    make([]outputRecord, 0, len(result.Records)),
		Statistics: result.Stats,
	}
	for _, r := range result.Records {
		attrs, _ := table.Get(r.Key())
		doc.Records = append(doc.Records, outputRecord{ExtractedAddress: r, Attributes: attrs})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"address", "symbol", "name", "file", "sheet", "row", "column",
	"confidence", "classification", "is_duplicate", "duplicate_count",
}

// writeCSV writes one row per record. Attribute columns follow the fixed
// columns in name order and are empty where a record has no value.
func writeCSV(w io.Writer, result *extraction.Result, table *enrichment.Table) error {
	names := table.Names()

	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string{}, csvHeader...), names...)); err != nil {
		return err
	}

	for _, r := range result.Records {
		row := []string{
			r.Address,
			r.Symbol,
			r.Name,
			r.File,
			r.Sheet,
			strconv.Itoa(r.Row),
			strconv.Itoa(r.Column),
			strconv.FormatFloat(r.Confidence, 'f', -1, 64),
			r.Classification,
			strconv.FormatBool(r.IsDuplicate),
			strconv.Itoa(r.DuplicateCount),
		}
		attrs, _ := table.Get(r.Key())
		for _, name := range names {
			row = append(row, attrs[name])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
