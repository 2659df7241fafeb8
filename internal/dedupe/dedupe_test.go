package dedupe

import (
	"testing"

	"github.com/fyrsmithlabs/coinscan/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesis = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func rec(file, sheet, addr string, row, col int) *record.ExtractedAddress {
	return &record.ExtractedAddress{
		Address: addr, Symbol: "BTC", Name: "Bitcoin",
		File: file, Sheet: sheet, Row: row, Column: col,
		Confidence: 100, DuplicateCount: 1,
	}
}

func TestMark_ThreeOccurrencesAndOtherFile(t *testing.T) {
	// Deliberately out of order.
	r9 := rec("a.csv", "", genesis, 9, 1)
	r2 := rec("a.csv", "", genesis, 2, 3)
	r5 := rec("a.csv", "", genesis, 5, 1)
	other := rec("b.csv", "", genesis, 1, 1)
	records := []*record.ExtractedAddress{r9, r2, other, r5}

	dups := Mark(records)

	assert.Equal(t, 2, dups)
	assert.False(t, r2.IsDuplicate)
	assert.Equal(t, 3, r2.DuplicateCount)
	for _, r := range []*record.ExtractedAddress{r5, r9} {
		assert.True(t, r.IsDuplicate, "row %d", r.Row)
		assert.Equal(t, 3, r.DuplicateCount)
	}
	assert.False(t, other.IsDuplicate)
	assert.Equal(t, 1, other.DuplicateCount)

	assert.Equal(t, []*record.ExtractedAddress{r9, r2, other, r5}, records, "input order is preserved")
}

func TestMark_GroupingKey(t *testing.T) {
	eth := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	tests := []struct {
		name     string
		a, b     *record.ExtractedAddress
		wantDups int
	}{
		{"case-insensitive address", rec("f", "", eth, 1, 1), rec("f", "", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", 2, 1), 1},
		{"different sheet", rec("f", "S1", eth, 1, 1), rec("f", "S2", eth, 2, 1), 0},
		{"empty sheet vs named sheet", rec("f", "", eth, 1, 1), rec("f", "S1", eth, 2, 1), 0},
		{"different file", rec("f", "", eth, 1, 1), rec("g", "", eth, 1, 1), 0},
		{"same row later column", rec("f", "", eth, 4, 2), rec("f", "", eth, 4, 7), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mark([]*record.ExtractedAddress{tt.b, tt.a})
			assert.Equal(t, tt.wantDups, got)
			assert.False(t, tt.a.IsDuplicate)
			assert.Equal(t, tt.wantDups > 0, tt.b.IsDuplicate)
			assert.Equal(t, tt.wantDups+1, tt.a.DuplicateCount)
			assert.Equal(t, tt.a.DuplicateCount, tt.b.DuplicateCount)
		})
	}
}

func TestMark_CrossCurrency(t *testing.T) {
	a := rec("f", "", "TCBovr2TxNkopfemm8hEdew2beX7vHGK5i", 1, 1)
	a.Symbol, a.Name = "TRX", "Tron"
	b := rec("f", "", "TCBovr2TxNkopfemm8hEdew2beX7vHGK5i", 3, 1)
	b.Symbol, b.Name = "USDT", "Tether"

	assert.Equal(t, 1, Mark([]*record.ExtractedAddress{a, b}))
	assert.True(t, b.IsDuplicate)
}

func TestMark_Idempotent(t *testing.T) {
	records := []*record.ExtractedAddress{
		rec("f", "", genesis, 1, 1),
		rec("f", "", genesis, 2, 1),
		rec("f", "", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", 3, 1),
	}
	first := Mark(records)
	snapshot := make([]record.ExtractedAddress, len(records))
	for i, r := range records {
		snapshot[i] = *r
	}

	assert.Equal(t, first, Mark(records))
	for i, r := range records {
		assert.Equal(t, snapshot[i], *r)
	}
}

func TestMark_Empty(t *testing.T) {
	assert.Zero(t, Mark(nil))
}

func TestSummarize(t *testing.T) {
	records := []*record.ExtractedAddress{
		rec("a.csv", "", genesis, 2, 1),
		rec("a.csv", "", genesis, 5, 1),
		rec("a.csv", "", genesis, 9, 1),
		rec("a.csv", "", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", 1, 1),
		rec("a.csv", "", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", 4, 2),
		rec("b.xlsx", "Sheet1", genesis, 1, 1),
	}
	records[4].Symbol, records[4].Name = "LTC", "Litecoin"

	s := Summarize(records)

	assert.Equal(t, 3, s.UniqueAddresses)
	assert.Equal(t, 3, s.DuplicateInstances)

	require.Len(t, s.Sources, 1)
	assert.Equal(t, "a.csv", s.Sources[0].Source)
	assert.Equal(t, 2, s.Sources[0].UniqueAddresses)
	assert.Equal(t, 3, s.Sources[0].DuplicateInstances)
	assert.Len(t, s.Sources[0].Examples, 2)

	require.Len(t, s.MostDuplicated, 2)
	top := s.MostDuplicated[0]
	assert.Equal(t, 3, top.Count)
	assert.Equal(t, "1a1zp1ep5qgefi2dmptftl5slmv7divfna", top.Address)
	assert.Equal(t, []Position{{2, 1}, {5, 1}, {9, 1}}, top.Positions)
	assert.Equal(t, []string{"Bitcoin", "Litecoin"}, s.MostDuplicated[1].Currencies)

	for _, r := range records {
		assert.False(t, r.IsDuplicate, "Summarize does not mark")
	}
}

func TestSummarize_CapsMostDuplicated(t *testing.T) {
	var records []*record.ExtractedAddress
	for i := 0; i < 12; i++ {
		addr := genesis[:33] + string(rune('a'+i))
		records = append(records, rec("f", "", addr, 1, 1), rec("f", "", addr, 2, 1))
	}
	s := Summarize(records)
	assert.Len(t, s.MostDuplicated, mostDuplicatedMax)
	assert.Len(t, s.Sources[0].Examples, examplesPerSource)
}

func TestSource(t *testing.T) {
	assert.Equal(t, "a.csv", Source("a.csv", ""))
	assert.Equal(t, "b.xlsx [Sheet1]", Source("b.xlsx", "Sheet1"))
}
