package marketdata

import "BourseDash/internal/model"

// MockSource returns controllable fixed data for development and testing.
// The canned table is filtered to the requested symbols, so symbols absent
// from Table behave like per-symbol fetch failures.
type MockSource struct {
	Table model.PriceTable
	Err   error
	Calls [][]string
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchDailyHistory(symbols []string, days int) (model.PriceTable, error) {
	m.Calls = append(m.Calls, append([]string(nil), symbols...))
	if m.Err != nil {
		return nil, m.Err
	}
	if len(symbols) == 0 {
		return model.PriceTable{}, nil
	}
	want := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		want[s] = true
	}
	table := model.PriceTable{}
	for _, b := range m.Table {
		if want[b.Symbol] {
			table = append(table, b)
		}
	}
	return table, nil
}
