package dedupe

import (
	"sort"

	"github.com/fyrsmithlabs/coinscan/internal/record"
)

const (
	examplesPerSource = 5
	mostDuplicatedMax = 10
)

// Position is a 1-indexed cell position.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Duplicate describes an address seen more than once in one source.
type Duplicate struct {
	Address    string     `json:"address"`
	Source     string     `json:"source"`
	Count      int        `json:"count"`
	Positions  []Position `json:"positions"`
	Currencies []string   `json:"currencies"`
}

// SourceSummary covers one file or file/sheet pair that has duplicates.
type SourceSummary struct {
	Source             string      `json:"source"`
	UniqueAddresses    int         `json:"unique_addresses"`
	DuplicateInstances int         `json:"duplicate_instances"`
	Examples           []Duplicate `json:"examples"`
}

// Summary is a report-oriented view of duplicate occurrences.
type Summary struct {
	UniqueAddresses    int             `json:"unique_addresses"`
	DuplicateInstances int             `json:"duplicate_instances"`
	Sources            []SourceSummary `json:"sources_with_duplicates"`
	MostDuplicated     []Duplicate     `json:"most_duplicated"`
}

// Source renders a file/sheet pair the way reports label it.
func Source(file, sheet string) string {
	if sheet == "" {
		return file
	}
	return file + " [" + sheet + "]"
}

// Summarize reports duplicate occurrences in records. It does not depend on
// Mark having run.
func Summarize(records []*record.ExtractedAddress) Summary {
	var s Summary
	var all []Duplicate

	type sourceKey struct{ file, sheet string }
	sources := make(map[sourceKey]int)
	var ordered []SourceSummary

	for _, g := range Groups(records) {
		sk := sourceKey{g.Key.File, g.Key.Sheet}
		i, ok := sources[sk]
		if !ok {
			i = len(ordered)
			sources[sk] = i
			ordered = append(ordered, SourceSummary{Source: Source(sk.file, sk.sheet)})
		}
		src := &ordered[i]
		src.UniqueAddresses++
		s.UniqueAddresses++

		n := len(g.Records)
		if n < 2 {
			continue
		}
		d := describe(g, src.Source)
		src.DuplicateInstances += n - 1
		s.DuplicateInstances += n - 1
		if len(src.Examples) < examplesPerSource {
			src.Examples = append(src.Examples, d)
		}
		all = append(all, d)
	}

	for _, src := range ordered {
		if src.DuplicateInstances > 0 {
			s.Sources = append(s.Sources, src)
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Count > all[j].Count })
	if len(all) > mostDuplicatedMax {
		all = all[:mostDuplicatedMax]
	}
	s.MostDuplicated = all
	return s
}

func describe(g Group, source string) Duplicate {
	d := Duplicate{
		Address:   g.Key.Address,
		Source:    source,
		Count:     len(g.Records),
		Positions: make([]Position, 0, len(g.Records)),
	}
	names := make(map[string]struct{})
	for _, r := range g.Records {
		d.Positions = append(d.Positions, Position{Row: r.Row, Column: r.Column})
		if _, ok := names[r.Name]; !ok {
			names[r.Name] = struct{}{}
			d.Currencies = append(d.Currencies, r.Name)
		}
	}
	sort.Strings(d.Currencies)
	return d
}
