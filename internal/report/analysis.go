package report

import (
	"fmt"
	"strings"

	"BourseDash/internal/model"
)

func fmtPrice(v float64) string {
	if !model.Finite(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func fmtPct(v float64) string {
	if !model.Finite(v) {
		return "-"
	}
	return fmt.Sprintf("%+.2f%%", v*100)
}

// FormatAnalysis renders the single-symbol analysis view.
func FormatAnalysis(row model.MetricRow, levels model.PriceLevels, decision string, sentiment model.SentimentSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔎 %s | %s\n", row.Symbol, row.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Cours: %s | MA20: %s | MA50: %s | ATR14: %s\n",
		fmtPrice(row.Close), fmtPrice(row.MA20), fmtPrice(row.MA50), fmtPrice(row.ATR14)))
	b.WriteString(fmt.Sprintf("Variations: 1j %s | 7j %s | 30j %s\n",
		fmtPct(row.Pct1D), fmtPct(row.Pct7D), fmtPct(row.Pct30D)))
	b.WriteString(fmt.Sprintf("Seuils: entrée %s | objectif %s | stop %s\n",
		fmtPrice(levels.Entry), fmtPrice(levels.Target), fmtPrice(levels.Stop)))
	b.WriteString(fmt.Sprintf("Décision: %s | Sentiment: %+.2f\n", decision, sentiment.Score))
	b.WriteString("Actu: " + sentiment.Text + "\n")
	for _, h := range sentiment.Headlines {
		b.WriteString("  - " + h.Title + "\n")
	}
	return b.String()
}

// FormatPositions renders the portfolio review table.
func FormatPositions(views []model.PositionView) string {
	if len(views) == 0 {
		return "Portefeuille vide.\n"
	}
	var b strings.Builder
	b.WriteString("💼 Portefeuille\n")
	for _, v := range views {
		name := v.Name
		if name == "" {
			name = v.Ticker
		}
		b.WriteString(fmt.Sprintf("  %s (%s, %s): cours %s | qté %.0f | valeur %s | perf %s | %s\n",
			name, v.Ticker, v.Account,
			fmtPrice(v.Close), v.Quantity, fmtPrice(v.Value),
			fmtPct(v.PerfPct/100), v.Decision))
	}
	return b.String()
}
