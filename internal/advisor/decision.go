package advisor

import (
	"math"

	"BourseDash/internal/model"
)

// Display labels for the decision heuristic.
const (
	LabelBuy   = "🟢 Acheter"
	LabelSell  = "🔴 Vendre"
	LabelHold  = "🟠 Garder"
	LabelAvoid = "🚫 Éviter"
	LabelWatch = "👁️ Surveiller"
)

// Decide maps a metric row to a display label. held switches to the
// position-holder thresholds; pru is the held reference price (NaN or 0
// when none). volMax is the profile's tolerated ATR/close ratio.
func Decide(row model.MetricRow, held bool, pru, volMax float64) string {
	px := row.Close
	if !model.Finite(px) {
		return LabelWatch
	}

	// Volatility term: missing ATR assumes a middling 3%.
	vol := 0.03
	if model.Finite(row.ATR14) && px > 0 {
		vol = row.ATR14 / px
	}

	trend := 0
	if model.Finite(row.MA20) && px >= row.MA20 {
		trend++
	}
	if model.Finite(row.MA50) && px >= row.MA50 {
		trend++
	}

	score := 0.0
	switch trend {
	case 2:
		score += 0.4
	case 0:
		score -= 0.4
	}
	if model.Finite(pru) && pru > 0 {
		switch {
		case px > pru*1.02:
			score += 0.2
		case px < pru*0.98:
			score -= 0.2
		}
	}
	if vol > volMax {
		score -= 0.2
	} else {
		score += 0.2
	}

	if held {
		switch {
		case score > 0.4:
			return LabelBuy
		case score < -0.2:
			return LabelSell
		default:
			return LabelHold
		}
	}
	switch {
	case score > 0.3:
		return LabelBuy
	case score < -0.2:
		return LabelAvoid
	default:
		return LabelWatch
	}
}

// Levels derives entry/target/stop prices from MA20 (falling back to the
// close) and the profile multipliers, rounded to cents.
func Levels(row model.MetricRow, p model.ProfileParams) model.PriceLevels {
	base := row.MA20
	if !model.Finite(base) {
		base = row.Close
	}
	if !model.Finite(base) {
		nan := math.NaN()
		return model.PriceLevels{Entry: nan, Target: nan, Stop: nan}
	}
	return model.PriceLevels{
		Entry:  round2(base * p.EntryMult),
		Target: round2(base * p.TargetMult),
		Stop:   round2(base * p.StopMult),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
