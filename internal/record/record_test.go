package record

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupKey_IgnoresCase(t *testing.T) {
	a := &ExtractedAddress{Address: "0xABCdef", File: "a.csv", Row: 1, Column: 1}
	b := &ExtractedAddress{Address: "0xabcDEF", File: "a.csv", Row: 7, Column: 2}
	c := &ExtractedAddress{Address: "0xabcdef", File: "b.csv", Row: 1, Column: 1}

	assert.Equal(t, a.GroupKey(), b.GroupKey())
	assert.NotEqual(t, a.GroupKey(), c.GroupKey())
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestLocation(t *testing.T) {
	r := &ExtractedAddress{File: "book.xlsx", Sheet: "Tx", Row: 3, Column: 4}
	assert.Equal(t, "book.xlsx [Tx] R3C4", r.Location())

	r.Sheet = ""
	assert.Equal(t, "book.xlsx R3C4", r.Location())
}

func TestLess(t *testing.T) {
	records := []*ExtractedAddress{
		{File: "b", Row: 1, Column: 1, Address: "x"},
		{File: "a", Sheet: "s2", Row: 1, Column: 1, Address: "x"},
		{File: "a", Sheet: "s1", Row: 2, Column: 1, Address: "x"},
		{File: "a", Sheet: "s1", Row: 1, Column: 3, Address: "x"},
		{File: "a", Sheet: "s1", Row: 1, Column: 3, Address: "w"},
	}
	sort.Slice(records, func(i, j int) bool { return Less(records[i], records[j]) })

	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Location() + " " + r.Address
	}
	assert.Equal(t, []string{
		"a [s1] R1C3 w",
		"a [s1] R1C3 x",
		"a [s1] R2C1 x",
		"a [s2] R1C1 x",
		"b R1C1 x",
	}, got)
}
