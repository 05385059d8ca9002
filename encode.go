package riskfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/etnz/riskfolio/date"
	"github.com/shopspring/decimal"
)

// This file persists price tables as JSONL, one asset per line, in a
// human-readable and git-friendly form:
//
//	{"asset":"AAPL","currency":"USD","prices":{"2026-01-02":187.15,"2026-01-03":189.30}}
//
// Prices are kept as decimals on the wire so that re-encoding a file
// does not drift the digits.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jasset is the object read from one line using the json parser.
type jasset struct {
	Asset    string                     `json:"asset"`
	Currency string                     `json:"currency,omitempty"`
	Prices   map[string]decimal.Decimal `json:"prices"`
}

// DecodePriceTable reads a JSONL stream of per-asset price histories
// and builds a validated PriceTable. Asset order in the table is the
// order of lines in the stream.
func DecodePriceTable(r io.Reader) (*PriceTable, error) {
	b := NewPriceTableBuilder()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var ja jasset
		if err := json.Unmarshal([]byte(line), &ja); err != nil {
			return nil, fmt.Errorf("parse error line %d: not a correct json: %w", i, err)
		}
		if ja.Asset == "" {
			return nil, fmt.Errorf("parse error line %d: missing the property %q", i, "asset")
		}
		if ja.Currency != "" {
			b.Currency(ja.Currency)
		}
		for day, price := range ja.Prices {
			on, err := date.Parse(day)
			if err != nil {
				return nil, fmt.Errorf("parse error line %d for %q: %w", i, ja.Asset, err)
			}
			b.Add(ja.Asset, on, price.InexactFloat64())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Build()
}

// EncodePriceTable writes the table as JSONL, one asset per line, days
// in chronological order within each line.
func EncodePriceTable(w io.Writer, pt *PriceTable) error {
	for _, asset := range pt.assets {
		ja := jasset{
			Asset:    asset,
			Currency: pt.currency,
			Prices:   make(map[string]decimal.Decimal, len(pt.index)),
		}
		for i, on := range pt.index {
			ja.Prices[on.String()] = decimal.NewFromFloat(pt.prices[asset][i])
		}
		line, err := marshalAsset(ja)
		if err != nil {
			return fmt.Errorf("cannot encode asset %q: %w", asset, err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// marshalAsset renders one JSONL line with the prices key-sorted, so
// encoding is deterministic and diffs stay minimal.
func marshalAsset(ja jasset) (string, error) {
	days := make([]string, 0, len(ja.Prices))
	for day := range ja.Prices {
		days = append(days, day)
	}
	sort.Strings(days)

	var sb strings.Builder
	sb.WriteString(`{"asset":`)
	name, err := json.Marshal(ja.Asset)
	if err != nil {
		return "", err
	}
	sb.Write(name)
	if ja.Currency != "" {
		sb.WriteString(`,"currency":`)
		cur, err := json.Marshal(ja.Currency)
		if err != nil {
			return "", err
		}
		sb.Write(cur)
	}
	sb.WriteString(`,"prices":{`)
	for i, day := range days {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%q:%s", day, ja.Prices[day].String())
	}
	sb.WriteString("}}")
	return sb.String(), nil
}
