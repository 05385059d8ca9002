package riskfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/riskfolio/date"
)

// DecodePriceTableCSV reads a price table in the common spreadsheet
// layout: a header row "date,ASSET1,ASSET2,..." followed by one row
// per day with the closing price of each asset.
func DecodePriceTableCSV(r io.Reader) (*PriceTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("empty csv: missing header row")
	}
	header := records[0]
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "date") {
		return nil, fmt.Errorf("invalid csv header %q: want date,ASSET1,ASSET2,...", strings.Join(header, ","))
	}

	b := NewPriceTableBuilder()
	for n, row := range records[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("csv row %d has %d fields, want %d", n+2, len(row), len(header))
		}
		on, err := date.Parse(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		for c := 1; c < len(row); c++ {
			price, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("csv row %d, asset %q: %w", n+2, header[c], err)
			}
			b.Add(strings.TrimSpace(header[c]), on, price)
		}
	}
	return b.Build()
}
