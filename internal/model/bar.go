package model

import "time"

// Bar is one daily OHLC bar for one symbol, unadjusted.
type Bar struct {
	Symbol string
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
}

// PriceTable is one long table of bars across symbols. Bars for a symbol
// must be sorted ascending by date before any rolling computation; the
// metrics engine enforces this itself.
type PriceTable []Bar

// Empty reports whether the table has no rows.
func (t PriceTable) Empty() bool { return len(t) == 0 }
