package enrichment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fyrsmithlabs/coinscan/internal/record"
)

// Attribute names written by Labels.Apply.
const (
	AttrLabel    = "label"
	AttrCategory = "category"
)

// ErrInvalidLabels is returned for a malformed label file.
var ErrInvalidLabels = errors.New("invalid label file")

type label struct {
	name     string
	category string
}

// Labels is an offline address book: address -> label and optional
// category. Lookups ignore case.
type Labels struct {
	byAddress map[string]label
}

// LoadLabels reads a CSV file with the header "address,label" and an
// optional third "category" column.
func LoadLabels(path string) (*Labels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open label file: %w", err)
	}
	defer f.Close()
	return ReadLabels(f)
}

// ReadLabels parses label CSV from r.
func ReadLabels(r io.Reader) (*Labels, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrInvalidLabels, err)
	}
	if len(header) < 2 || !strings.EqualFold(header[0], "address") || !strings.EqualFold(header[1], "label") {
		return nil, fmt.Errorf("%w: header must start with address,label; got %v", ErrInvalidLabels, header)
	}

	l := &Labels{byAddress: make(map[string]label)}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLabels, err)
		}
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			return nil, fmt.Errorf("%w: line %d needs an address and a label", ErrInvalidLabels, line)
		}
		lb := label{name: strings.TrimSpace(row[1])}
		if len(row) > 2 {
			lb.category = strings.TrimSpace(row[2])
		}
		l.byAddress[strings.ToLower(strings.TrimSpace(row[0]))] = lb
	}
	return l, nil
}

// Len returns the number of labelled addresses.
func (l *Labels) Len() int {
	return len(l.byAddress)
}

// Lookup returns the label and category for addr.
func (l *Labels) Lookup(addr string) (name, category string, ok bool) {
	lb, ok := l.byAddress[strings.ToLower(addr)]
	return lb.name, lb.category, ok
}

// Apply writes label attributes into t for every record whose address is
// known and returns how many records matched.
func (l *Labels) Apply(records []*record.ExtractedAddress, t *Table) int {
	var n int
	for _, r := range records {
		name, category, ok := l.Lookup(r.Address)
		if !ok {
			continue
		}
		k := r.Key()
		t.Set(k, AttrLabel, name)
		if category != "" {
			t.Set(k, AttrCategory, category)
		}
		n++
	}
	return n
}
