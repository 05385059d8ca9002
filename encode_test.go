package riskfolio

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestEncodePriceTable(t *testing.T) {
	pt := table(t, []string{"AAPL", "MSFT"}, map[string][]float64{
		"AAPL": {100, 187.15},
		"MSFT": {200, 202.5},
	})
	var buf bytes.Buffer
	if err := EncodePriceTable(&buf, pt); err != nil {
		t.Fatalf("EncodePriceTable() = %v", err)
	}
	want := `{"asset":"AAPL","currency":"USD","prices":{"2026-01-01":100,"2026-01-02":187.15}}
{"asset":"MSFT","currency":"USD","prices":{"2026-01-01":200,"2026-01-02":202.5}}
`
	if buf.String() != want {
		t.Errorf("EncodePriceTable() = %q, want %q", buf.String(), want)
	}
}

func TestPriceTableRoundTrip(t *testing.T) {
	pt := table(t, []string{"AAPL", "MSFT"}, map[string][]float64{
		"AAPL": {100, 187.15, 92.3},
		"MSFT": {200, 202.5, 199.99},
	})
	var buf bytes.Buffer
	if err := EncodePriceTable(&buf, pt); err != nil {
		t.Fatalf("EncodePriceTable() = %v", err)
	}
	got, err := DecodePriceTable(&buf)
	if err != nil {
		t.Fatalf("DecodePriceTable() = %v", err)
	}
	if !reflect.DeepEqual(got, pt) {
		t.Errorf("round trip changed the table:\n got %+v\nwant %+v", got, pt)
	}
}

func TestDecodePriceTable(t *testing.T) {
	// Blank lines are tolerated, asset order follows the stream.
	in := `{"asset":"MSFT","currency":"USD","prices":{"2026-01-02":202.5,"2026-01-01":200}}

{"asset":"AAPL","prices":{"2026-01-01":100,"2026-01-02":187.15}}
`
	pt, err := DecodePriceTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodePriceTable() = %v", err)
	}
	if got := pt.Assets(); got[0] != "MSFT" || got[1] != "AAPL" {
		t.Errorf("Assets() = %v, want [MSFT AAPL]", got)
	}
	// Days come out chronological whatever the key order on the line.
	checkSeries(t, "Prices(MSFT)", pt.Prices("MSFT"), []float64{200, 202.5})
	if pt.Currency() != "USD" {
		t.Errorf("Currency() = %q, want USD", pt.Currency())
	}
}

func TestDecodePriceTableErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", "not a json line"},
		{"missing asset", `{"prices":{"2026-01-01":100}}`},
		{"bad date", `{"asset":"AAPL","prices":{"someday":100,"2026-01-02":101}}`},
		{"bad price", `{"asset":"AAPL","prices":{"2026-01-01":-5,"2026-01-02":101}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodePriceTable(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodePriceTable(%q) = nil error", tc.in)
			}
		})
	}
}
