package riskfolio

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJWGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"date":"2026-01-02","adjusted_close":187.15}]`))
	}))
	defer srv.Close()

	var content []struct {
		Date  string  `json:"date"`
		Close float64 `json:"adjusted_close"`
	}
	if err := jwget(srv.Client(), srv.URL, &content); err != nil {
		t.Fatalf("jwget() = %v", err)
	}
	if len(content) != 1 || content[0].Date != "2026-01-02" || content[0].Close != 187.15 {
		t.Errorf("jwget() decoded %+v", content)
	}
}

func TestJWGetErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such ticker", http.StatusNotFound)
		}))
		defer srv.Close()
		var out any
		if err := jwget(srv.Client(), srv.URL, &out); err == nil {
			t.Error("jwget() = nil error on a 404")
		}
	})
	t.Run("bad payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer srv.Close()
		var out any
		if err := jwget(srv.Client(), srv.URL, &out); err == nil {
			t.Error("jwget() = nil error on a bad payload")
		}
	})
}

func TestNewEODHDMissingKey(t *testing.T) {
	t.Setenv(EODHDKeyEnv, "")
	if _, err := NewEODHD(""); err == nil {
		t.Error("NewEODHD(\"\") = nil error without a key")
	}
	if p, err := NewEODHD("demo"); err != nil || p == nil {
		t.Errorf("NewEODHD(demo) = %v, %v", p, err)
	}
}
