// Package extraction finds cryptocurrency addresses in cells of tabular
// text.
//
// For each cell every registered currency's patterns run over the raw text
// and over a copy with structural delimiters padded by spaces, so strict
// patterns can anchor inside dense JSON or CSV fragments. Each candidate is
// then passed through the false-positive filter, scored, and when
// requested validated against its currency family.
//
// # Usage
//
//	reg := registry.NewDefault()
//	ex, err := extraction.New(reg, extraction.Options{ValidateChecksums: true})
//	if err != nil {
//	    return err
//	}
//	res, err := ex.Run(ctx, cells)
//
// New seals the registry: custom currencies must be registered before it.
// Run processes cells on a bounded pool of goroutines, marks duplicates
// with the dedupe package and returns records in file, sheet, row and
// column order.
package extraction
