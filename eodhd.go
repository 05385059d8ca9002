package riskfolio

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/riskfolio/date"
)

// This file contains functions to access the EODHD API, the price
// history provider feeding the analytics pipeline. The provider is
// glue: its output goes through the same PriceTable validation as any
// other input.

// EODHDKeyEnv is the environment variable read by NewEODHD when no
// explicit API key is given. Get one at https://eodhd.com/.
const EODHDKeyEnv = "EODHD_API_KEY"

// EODHD fetches end-of-day close prices from eodhd.com.
type EODHD struct {
	apiKey string
	client *http.Client
}

// NewEODHD returns a provider for the given API key, falling back to
// the EODHD_API_KEY environment variable when the key is empty.
func NewEODHD(apiKey string) (*EODHD, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EODHDKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("missing EODHD API key: set the flag or the %q environment variable", EODHDKeyEnv)
	}
	return &EODHD{apiKey: apiKey, client: daily()}, nil
}

// Daily fetches the split-adjusted daily close prices for one ticker
// over a date range, bounds included.
func (p *EODHD) Daily(ticker string, r date.Range) (date.History[float64], error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=…&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", ticker, p.apiKey, r.From, r.To)
	type Info struct {
		Date  date.Date `json:"date"`
		Close float64   `json:"adjusted_close"`
	}

	var prices date.History[float64]
	content := make([]Info, 0)
	if err := jwget(p.client, addr, &content); err != nil {
		return prices, fmt.Errorf("eodhd cannot fetch daily prices for %q: %w", ticker, err)
	}
	for _, info := range content {
		if r.Contains(info.Date) {
			prices.Append(info.Date, info.Close)
		}
	}
	return prices, nil
}

// Fetch builds a validated PriceTable for a set of tickers over a date
// range. Asset order in the table is the ticker order given.
func (p *EODHD) Fetch(tickers []string, r date.Range, currency string) (*PriceTable, error) {
	b := NewPriceTableBuilder().Currency(currency)
	for _, ticker := range tickers {
		prices, err := p.Daily(ticker, r)
		if err != nil {
			return nil, err
		}
		for on, close := range prices.Values() {
			b.Add(ticker, on, close)
		}
	}
	return b.Build()
}

// Latest probes the real-time endpoint for the last traded price of a
// ticker. The payload shape moves around, so the close is extracted by
// path rather than with a rigid struct.
func (p *EODHD) Latest(ticker string) (float64, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", ticker, p.apiKey)
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", ticker, err)
	}
	path := "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q %s %v", ticker, path, "not a float", jval)
	}
	return val, nil
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", date.Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache.
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a cache that expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
