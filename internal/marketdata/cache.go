package marketdata

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"BourseDash/internal/model"
)

// CachedSource wraps a Source with an in-process cache keyed by the exact
// combination of requested symbols and lookback period. Entries never
// expire on their own; Flush is the only invalidation.
type CachedSource struct {
	src     Source
	mu      sync.Mutex
	entries map[string]model.PriceTable
}

// NewCachedSource wraps src with request caching.
func NewCachedSource(src Source) *CachedSource {
	return &CachedSource{
		src:     src,
		entries: make(map[string]model.PriceTable),
	}
}

func (c *CachedSource) Name() string { return c.src.Name() }

func cacheKey(symbols []string, days int) string {
	sorted := append([]string(nil), symbols...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",") + "|" + strconv.Itoa(days)
}

// FetchDailyHistory serves identical repeated requests from memory; empty
// results of a failed batch are cached too, matching the once-per-request
// failure policy.
func (c *CachedSource) FetchDailyHistory(symbols []string, days int) (model.PriceTable, error) {
	if len(symbols) == 0 {
		return model.PriceTable{}, nil
	}
	key := cacheKey(symbols, days)

	c.mu.Lock()
	table, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return table, nil
	}

	table, err := c.src.FetchDailyHistory(symbols, days)
	if err != nil {
		table = model.PriceTable{}
	}

	c.mu.Lock()
	c.entries[key] = table
	c.mu.Unlock()
	return table, nil
}

// Flush clears every cached price batch.
func (c *CachedSource) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]model.PriceTable)
	c.mu.Unlock()
}
