package model

import (
	"math"
	"time"
)

// MetricRow is the computed indicator summary for one symbol: the most
// recent bar's date and close joined with rolling indicators and trailing
// percentage changes. Fields that could not be computed are NaN.
type MetricRow struct {
	Symbol string
	Date   time.Time
	Close  float64
	ATR14  float64
	MA20   float64
	MA50   float64
	Pct1D  float64
	Pct7D  float64
	Pct30D float64
}

// MarketRow is a MetricRow enriched with the constituent's display name
// and tagged with its originating index.
type MarketRow struct {
	MetricRow
	Name  string
	Index string
}

// MarketSummary condenses one aggregation run for display and recording.
type MarketSummary struct {
	AvgPct1D float64
	Ups      int
	Downs    int
	Rows     int
}

// Finite reports whether v is a usable number (not NaN, not Inf).
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
