package marketdata

import (
	"testing"
	"time"
)

const chartFixture = `{
  "chart": {
    "result": [
      {
        "timestamp": [1709251200, 1709337600, 1709424000, 1709510400],
        "indicators": {
          "quote": [
            {
              "open":  [100.0, 102.0, null, 101.5],
              "high":  [101.0, 103.0, null, 102.0],
              "low":   [99.0, 101.0, null, 100.5],
              "close": [100.5, 102.5, null, 101.0]
            }
          ]
        }
      }
    ],
    "error": null
  }
}`

func TestDecodeChart_SkipsNullBars(t *testing.T) {
	bars, err := decodeChart("MC.PA", []byte(chartFixture))
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars (null bar dropped), got %d", len(bars))
	}
	for i, b := range bars {
		if b.Symbol != "MC.PA" {
			t.Errorf("bar %d: symbol %q", i, b.Symbol)
		}
		if i > 0 && bars[i-1].Date.After(b.Date) {
			t.Errorf("bars not sorted ascending at %d", i)
		}
	}
	if bars[0].Close != 100.5 || bars[2].Close != 101.0 {
		t.Errorf("unexpected closes: first=%.2f last=%.2f", bars[0].Close, bars[2].Close)
	}
	want := time.Unix(1709251200, 0).UTC()
	if !bars[0].Date.Equal(want) {
		t.Errorf("first date = %s, want %s", bars[0].Date, want)
	}
}

func TestDecodeChart_MultipleResultEntries(t *testing.T) {
	body := []byte(`{
	  "chart": {
	    "result": [
	      {"timestamp": [1709251200],
	       "indicators": {"quote": [{"open": [10.0], "high": [11.0], "low": [9.0], "close": [10.5]}]}},
	      {"timestamp": [1709337600],
	       "indicators": {"quote": [{"open": [20.0], "high": [21.0], "low": [19.0], "close": [20.5]}]}}
	    ],
	    "error": null
	  }
	}`)
	bars, err := decodeChart("X", body)
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected bars from every result entry, got %d", len(bars))
	}
	if bars[0].Close != 10.5 || bars[1].Close != 20.5 {
		t.Errorf("unexpected closes %v", bars)
	}
}

func TestDecodeChart_RaggedQuoteArrays(t *testing.T) {
	// Open/high/low are shorter than timestamp/close; decoding must stop
	// at what every array has instead of indexing past the short ones.
	body := []byte(`{
	  "chart": {
	    "result": [{"timestamp": [1709251200, 1709337600],
	      "indicators": {"quote": [{"open": [10.0], "high": [11.0], "low": [9.0], "close": [10.5, 20.5]}]}}],
	    "error": null
	  }
	}`)
	bars, err := decodeChart("X", body)
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar from the intact prefix, got %d", len(bars))
	}
	if bars[0].Close != 10.5 {
		t.Errorf("close = %.2f, want 10.5", bars[0].Close)
	}
}

func TestDecodeChart_EmptyQuoteArrays(t *testing.T) {
	body := []byte(`{
	  "chart": {
	    "result": [{"timestamp": [1709251200],
	      "indicators": {"quote": [{"open": [], "high": [], "low": [], "close": []}]}}],
	    "error": null
	  }
	}`)
	if _, err := decodeChart("X", body); err == nil {
		t.Fatal("expected error when the quote arrays are empty")
	}
}

func TestDecodeChart_APIError(t *testing.T) {
	body := []byte(`{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found"}}}`)
	if _, err := decodeChart("NOPE", body); err == nil {
		t.Fatal("expected error for API error payload")
	}
}

func TestDecodeChart_EmptyResult(t *testing.T) {
	body := []byte(`{"chart": {"result": [], "error": null}}`)
	if _, err := decodeChart("X", body); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestDecodeChart_AllNullBars(t *testing.T) {
	body := []byte(`{
	  "chart": {
	    "result": [{"timestamp": [1709251200],
	      "indicators": {"quote": [{"open": [null], "high": [null], "low": [null], "close": [null]}]}}],
	    "error": null
	  }
	}`)
	if _, err := decodeChart("X", body); err == nil {
		t.Fatal("expected error when every bar is null")
	}
}

func TestRangeForDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{5, "5d"},
		{30, "1mo"},
		{90, "3mo"},
		{180, "6mo"},
		{365, "1y"},
		{400, "2y"},
	}
	for _, tt := range tests {
		if got := rangeForDays(tt.days); got != tt.want {
			t.Errorf("rangeForDays(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
