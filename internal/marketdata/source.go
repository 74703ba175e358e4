package marketdata

import "BourseDash/internal/model"

// Source defines the interface for fetching historical market data.
// Implementations drop symbols that fail individually and return an error
// only when the request as a whole could not be served.
type Source interface {
	// FetchDailyHistory retrieves daily unadjusted OHLC bars for all
	// requested symbols over the trailing number of days, as one long table.
	FetchDailyHistory(symbols []string, days int) (model.PriceTable, error)
	Name() string
}
