// Package aggregator composes constituents, price history, and metrics
// across multiple indices into one combined dataset.
package aggregator

import (
	"log"

	"BourseDash/internal/metrics"
	"BourseDash/internal/model"
)

// ConstituentsProvider lists index members; empty means the index is
// unsupported or its listing could not be fetched.
type ConstituentsProvider interface {
	Members(index string) []model.Constituent
}

// PriceSource provides batched daily history.
type PriceSource interface {
	FetchDailyHistory(symbols []string, days int) (model.PriceTable, error)
}

// Aggregator builds the combined market table.
type Aggregator struct {
	Constituents ConstituentsProvider
	Prices       PriceSource
}

// New creates an Aggregator.
func New(cp ConstituentsProvider, ps PriceSource) *Aggregator {
	return &Aggregator{Constituents: cp, Prices: ps}
}

// Aggregate runs the pipeline per index and concatenates the results.
// An index whose constituents or prices come back empty is skipped; the
// remaining indices are unaffected. Per-index metric-row order is
// preserved within each index's block.
func (a *Aggregator) Aggregate(indices []string, days int) []model.MarketRow {
	var combined []model.MarketRow
	for _, index := range indices {
		members := a.Constituents.Members(index)
		if len(members) == 0 {
			log.Printf("[WARN] aggregate: no constituents for %s, skipping", index)
			continue
		}

		symbols := make([]string, len(members))
		names := make(map[string]string, len(members))
		for i, m := range members {
			symbols[i] = m.Symbol
			names[m.Symbol] = m.Name
		}

		table, err := a.Prices.FetchDailyHistory(symbols, days)
		if err != nil || table.Empty() {
			log.Printf("[WARN] aggregate: no prices for %s, skipping", index)
			continue
		}

		for _, row := range metrics.Compute(table) {
			combined = append(combined, model.MarketRow{
				MetricRow: row,
				Name:      names[row.Symbol],
				Index:     index,
			})
		}
	}
	return combined
}

// Summarize condenses the combined table into the daily market summary:
// mean 1-day change across rows where it is finite, plus up/down counts.
func Summarize(rows []model.MarketRow) model.MarketSummary {
	sum := model.MarketSummary{Rows: len(rows)}
	total, n := 0.0, 0
	for _, r := range rows {
		if !model.Finite(r.Pct1D) {
			continue
		}
		total += r.Pct1D
		n++
		if r.Pct1D > 0 {
			sum.Ups++
		} else if r.Pct1D < 0 {
			sum.Downs++
		}
	}
	if n > 0 {
		sum.AvgPct1D = total / float64(n)
	}
	return sum
}
