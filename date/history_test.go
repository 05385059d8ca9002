package date

import "testing"

func TestHistoryAppendSorts(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2026-01-03"), 3)
	h.Append(MustParse("2026-01-01"), 1)
	h.Append(MustParse("2026-01-02"), 2)

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	want := 1.0
	for on, v := range h.Values() {
		if v != want {
			t.Errorf("value on %s = %v, want %v", on, v, want)
		}
		want++
	}
	day, value := h.Latest()
	if day != MustParse("2026-01-03") || value != 3 {
		t.Errorf("Latest() = %s, %v, want 2026-01-03, 3", day, value)
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2026-01-01"), 1)
	h.Append(MustParse("2026-01-01"), 10)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(MustParse("2026-01-01")); !ok || v != 10 {
		t.Errorf("Get() = %v, %v, want 10, true", v, ok)
	}
}

func TestHistoryGet(t *testing.T) {
	var h History[string]
	h.Append(MustParse("2026-01-01"), "a")
	if _, ok := h.Get(MustParse("2026-01-02")); ok {
		t.Error("Get() on a missing day should not be found")
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2026-01-01"), 1)
	h.Append(MustParse("2026-01-05"), 5)

	cases := []struct {
		day   string
		want  float64
		found bool
	}{
		{"2025-12-31", 0, false},
		{"2026-01-01", 1, true},
		{"2026-01-03", 1, true},
		{"2026-01-05", 5, true},
		{"2026-02-01", 5, true},
	}
	for _, tc := range cases {
		got, found := h.ValueAsOf(MustParse(tc.day))
		if got != tc.want || found != tc.found {
			t.Errorf("ValueAsOf(%s) = %v, %v, want %v, %v", tc.day, got, found, tc.want, tc.found)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	var h History[float64]
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
	if day, value := h.Latest(); !day.IsZero() || value != 0 {
		t.Errorf("Latest() = %s, %v, want zero values", day, value)
	}
}
