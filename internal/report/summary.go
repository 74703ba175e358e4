// Package report renders aggregation results as plain text for logs and
// the console.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"BourseDash/internal/model"
)

// FormatSummary renders the one-line market summary.
func FormatSummary(sum model.MarketSummary) string {
	return fmt.Sprintf("Résumé global (Jour) | variation moyenne %+.2f%% | %d hausses / %d baisses (%d valeurs)",
		sum.AvgPct1D*100, sum.Ups, sum.Downs, sum.Rows)
}

// FormatRun renders a full run report: summary line plus the day's top
// and bottom movers.
func FormatRun(at time.Time, rows []model.MarketRow, sum model.MarketSummary, topN int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 BourseDash | %s\n", at.Format("2006-01-02 15:04")))
	b.WriteString(FormatSummary(sum))
	b.WriteString("\n")

	movers := make([]model.MarketRow, 0, len(rows))
	for _, r := range rows {
		if model.Finite(r.Pct1D) {
			movers = append(movers, r)
		}
	}
	sort.SliceStable(movers, func(i, j int) bool { return movers[i].Pct1D > movers[j].Pct1D })

	if len(movers) == 0 {
		return b.String()
	}
	if topN > len(movers) {
		topN = len(movers)
	}

	b.WriteString("Top hausses:\n")
	for _, r := range movers[:topN] {
		b.WriteString(formatMover(r))
	}
	b.WriteString("Top baisses:\n")
	for i := len(movers) - topN; i < len(movers); i++ {
		b.WriteString(formatMover(movers[i]))
	}
	return b.String()
}

func formatMover(r model.MarketRow) string {
	name := r.Name
	if name == "" {
		name = r.Symbol
	}
	return fmt.Sprintf("  %s (%s, %s): %+.2f%%\n", name, r.Symbol, r.Index, r.Pct1D*100)
}
