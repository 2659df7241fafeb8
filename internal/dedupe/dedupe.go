// Package dedupe marks repeated address occurrences across a finished
// extraction run.
//
// Records are grouped by file, sheet and lower-cased address. Within a
// group the earliest record by row, then column, is the first occurrence;
// every later record is a duplicate. All records of a group carry the group
// size as their duplicate count.
//
// Mark must see the complete record set. It is not incremental.
package dedupe

import (
	"sort"

	"github.com/fyrsmithlabs/coinscan/internal/record"
)

// Group is one (file, sheet, address) bucket in first-occurrence order.
type Group struct {
	Key     record.GroupKey
	Records []*record.ExtractedAddress
}

// Groups buckets records without modifying them. Groups are returned in the
// order their first record appears in records, and each group is sorted by
// row, then column.
func Groups(records []*record.ExtractedAddress) []Group {
	index := make(map[record.GroupKey]int)
	var groups []Group
	for _, r := range records {
		k := r.GroupKey()
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	for _, g := range groups {
		sort.SliceStable(g.Records, func(i, j int) bool {
			return record.Less(g.Records[i], g.Records[j])
		})
	}
	return groups
}

// Mark sets IsDuplicate and DuplicateCount on every record and returns the
// number of records marked as duplicates. The order of records is not
// changed.
func Mark(records []*record.ExtractedAddress) int {
	var duplicates int
	for _, g := range Groups(records) {
		n := len(g.Records)
		for i, r := range g.Records {
			r.IsDuplicate = i > 0
			r.DuplicateCount = n
		}
		duplicates += n - 1
	}
	return duplicates
}
