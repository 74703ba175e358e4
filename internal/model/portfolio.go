package model

// Position is one manually maintained portfolio line. PRU is the average
// acquisition price ("prix de revient unitaire").
type Position struct {
	Name     string  `json:"name"`
	Ticker   string  `json:"ticker"`
	Account  string  `json:"account"`
	Quantity float64 `json:"quantity"`
	PRU      float64 `json:"pru"`
}

// PositionView is a position joined with its latest metrics and the
// advisor's output, ready for display.
type PositionView struct {
	Position
	Close    float64
	Value    float64
	PerfPct  float64 // vs PRU, NaN when PRU unusable
	Levels   PriceLevels
	Decision string
}
