package portfolio

import (
	"math"

	"BourseDash/internal/advisor"
	"BourseDash/internal/model"
)

// Review joins each position with its latest metric row and the advisor's
// verdict. Positions whose ticker has no metrics keep NaN fields and a
// watch label; they are never dropped.
func Review(positions []model.Position, rows []model.MetricRow, params model.ProfileParams) []model.PositionView {
	bySymbol := make(map[string]model.MetricRow, len(rows))
	for _, r := range rows {
		bySymbol[r.Symbol] = r
	}

	views := make([]model.PositionView, 0, len(positions))
	for _, pos := range positions {
		row, ok := bySymbol[pos.Ticker]
		if !ok {
			row = model.MetricRow{
				Symbol: pos.Ticker,
				Close:  math.NaN(), ATR14: math.NaN(), MA20: math.NaN(), MA50: math.NaN(),
				Pct1D: math.NaN(), Pct7D: math.NaN(), Pct30D: math.NaN(),
			}
		}

		view := model.PositionView{
			Position: pos,
			Close:    row.Close,
			PerfPct:  math.NaN(),
			Levels:   advisor.Levels(row, params),
			Decision: advisor.Decide(row, true, pos.PRU, params.VolMax),
		}
		if model.Finite(row.Close) {
			view.Value = row.Close * pos.Quantity
			if pos.PRU > 0 {
				view.PerfPct = (row.Close - pos.PRU) / pos.PRU * 100
			}
		}
		views = append(views, view)
	}
	return views
}
