package recorder

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"BourseDash/internal/model"
)

func TestSQLiteRecorder_RecordSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	at := time.Date(2024, 6, 3, 7, 0, 0, 0, time.UTC)
	rows := []model.MarketRow{
		{
			MetricRow: model.MetricRow{
				Symbol: "MC.PA", Date: at, Close: 715,
				ATR14: math.NaN(), MA20: 700, MA50: math.NaN(),
				Pct1D: 0.01, Pct7D: math.NaN(), Pct30D: math.NaN(),
			},
			Name: "LVMH", Index: "CAC 40",
		},
	}
	sum := model.MarketSummary{AvgPct1D: 0.01, Ups: 1, Rows: 1}

	if err := r.RecordSnapshot(at, rows, sum); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM market_snapshots WHERE run_at = ?", at.Unix()).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}

	// NaN columns land as NULL.
	var atr *float64
	var close float64
	if err := r.db.QueryRow("SELECT atr14, close FROM market_snapshots WHERE symbol = 'MC.PA'").Scan(&atr, &close); err != nil {
		t.Fatal(err)
	}
	if atr != nil {
		t.Errorf("atr14 = %v, want NULL", *atr)
	}
	if close != 715 {
		t.Errorf("close = %.2f, want 715", close)
	}

	if err := r.db.QueryRow("SELECT COUNT(*) FROM run_summaries WHERE run_at = ?", at.Unix()).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("summary rows = %d, want 1", count)
	}
}

func TestSQLiteRecorder_EmptyRun(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "dash.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	// An empty run still records its summary line.
	if err := r.RecordSnapshot(time.Now(), nil, model.MarketSummary{}); err != nil {
		t.Fatal(err)
	}
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM run_summaries").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("summary rows = %d, want 1", count)
	}
}
