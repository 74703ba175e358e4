// Package metrics computes per-symbol rolling indicators and trailing
// percentage changes from a price table, producing one summary row per
// symbol. All values are recomputed from scratch on every call; fields
// with insufficient history come back as NaN, never as an error.
package metrics

import (
	"math"
	"sort"

	"BourseDash/internal/model"
)

const (
	atrWindow  = 14
	atrMinBars = 5
	ma20Window = 20
	ma20Min    = 5
	ma50Window = 50
	ma50Min    = 10
)

// Compute derives one MetricRow per symbol present in the table. Symbols
// with too little history still appear, with NaN in the fields that could
// not be computed. An empty input yields an empty result.
func Compute(table model.PriceTable) []model.MetricRow {
	rows := []model.MetricRow{}
	if table.Empty() {
		return rows
	}

	sorted := append(model.PriceTable(nil), table...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Symbol != sorted[j].Symbol {
			return sorted[i].Symbol < sorted[j].Symbol
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && sorted[end].Symbol == sorted[start].Symbol {
			end++
		}
		rows = append(rows, computeSymbol(sorted[start:end]))
		start = end
	}
	return rows
}

func computeSymbol(bars model.PriceTable) model.MetricRow {
	last := bars[len(bars)-1]
	return model.MetricRow{
		Symbol: last.Symbol,
		Date:   last.Date,
		Close:  last.Close,
		ATR14:  rollingMeanLast(trueRanges(bars), atrWindow, atrMinBars),
		MA20:   rollingMeanLast(closes(bars), ma20Window, ma20Min),
		MA50:   rollingMeanLast(closes(bars), ma50Window, ma50Min),
		Pct1D:  pctChange(bars, 1),
		Pct7D:  pctChange(bars, 7),
		Pct30D: pctChange(bars, 22),
	}
}

func closes(bars model.PriceTable) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// trueRanges computes the True Range per bar:
// max(high-low, |high-prevClose|, |low-prevClose|). The first bar has no
// prior close, so its TR is NaN and propagates as such.
func trueRanges(bars model.PriceTable) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		if i == 0 {
			out[i] = math.NaN()
			continue
		}
		prevClose := bars[i-1].Close
		tr := b.High - b.Low
		if hc := math.Abs(b.High - prevClose); hc > tr {
			tr = hc
		}
		if lc := math.Abs(b.Low - prevClose); lc > tr {
			tr = lc
		}
		out[i] = tr
	}
	return out
}

// rollingMeanLast is the trailing rolling mean over the final window,
// counting only finite values and requiring at least minCount of them.
func rollingMeanLast(vals []float64, window, minCount int) float64 {
	start := len(vals) - window
	if start < 0 {
		start = 0
	}
	sum, n := 0.0, 0
	for _, v := range vals[start:] {
		if model.Finite(v) {
			sum += v
			n++
		}
	}
	if n < minCount {
		return math.NaN()
	}
	return sum / float64(n)
}

// pctChange is (close[last] / close[last-n]) - 1, defined only when at
// least n+1 bars exist.
func pctChange(bars model.PriceTable, n int) float64 {
	if len(bars) < n+1 {
		return math.NaN()
	}
	base := bars[len(bars)-1-n].Close
	if base == 0 {
		return math.NaN()
	}
	return bars[len(bars)-1].Close/base - 1
}
