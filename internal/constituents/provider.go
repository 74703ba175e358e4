// Package constituents lists the (symbol, display name) members of the
// supported stock-market indices by parsing their public listing pages.
package constituents

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"BourseDash/internal/model"
)

type indexSpec struct {
	URL    string
	Suffix string // domestic suffix for unsuffixed listing symbols
}

// Supported indices and their listing pages. US listings already carry
// Yahoo-ready symbols; CAC and DAX listings need the domestic suffix.
var indexSpecs = map[string]indexSpec{
	"CAC 40":     {URL: "https://en.wikipedia.org/wiki/CAC_40", Suffix: ".PA"},
	"DAX 40":     {URL: "https://en.wikipedia.org/wiki/DAX", Suffix: ".DE"},
	"NASDAQ 100": {URL: "https://en.wikipedia.org/wiki/NASDAQ-100"},
	"S&P 500":    {URL: "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"},
	"Dow Jones":  {URL: "https://en.wikipedia.org/wiki/Dow_Jones_Industrial_Average"},
}

// Provider fetches and caches index constituents. Cache entries are
// invalidated only by Refresh; staleness tolerance is the caller's call.
type Provider struct {
	mu    sync.Mutex
	cache map[string][]model.Constituent
	fetch func(url string) (*goquery.Document, error)
}

// NewProvider creates a provider with its own HTTP client.
func NewProvider() *Provider {
	client := &http.Client{Timeout: 20 * time.Second}
	return &Provider{
		cache: make(map[string][]model.Constituent),
		fetch: func(url string) (*goquery.Document, error) {
			req, err := http.NewRequest("GET", url, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("User-Agent", "Mozilla/5.0")
			resp, err := client.Do(req)
			if err != nil {
				return nil, fmt.Errorf("fetch listing: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("fetch listing: status %d", resp.StatusCode)
			}
			return goquery.NewDocumentFromReader(resp.Body)
		},
	}
}

// Members returns the constituents of an index, cached per index. An
// unsupported index name or a fetch/parse failure yields an empty result,
// never an error.
func (p *Provider) Members(index string) []model.Constituent {
	spec, ok := indexSpecs[index]
	if !ok {
		return nil
	}

	p.mu.Lock()
	cached, hit := p.cache[index]
	p.mu.Unlock()
	if hit {
		return cached
	}

	doc, err := p.fetch(spec.URL)
	if err != nil {
		log.Printf("[WARN] constituents: %s: %v", index, err)
		return nil
	}
	members := parseConstituents(doc, index, spec.Suffix)

	p.mu.Lock()
	p.cache[index] = members
	p.mu.Unlock()
	return members
}

// Refresh drops every cached index so the next Members call refetches.
func (p *Provider) Refresh() {
	p.mu.Lock()
	p.cache = make(map[string][]model.Constituent)
	p.mu.Unlock()
}

// parseConstituents locates the member table in a listing page and
// extracts (symbol, name) pairs, regenerated wholesale on each call.
func parseConstituents(doc *goquery.Document, index, suffix string) []model.Constituent {
	table := pickTable(doc)
	if table == nil {
		return nil
	}

	headers := headerCells(table)
	tickerCol := findColumn(headers, 0, "ticker", "symbol")
	nameCol := findColumn(headers, 1, "company", "name")

	var members []model.Constituent
	seen := make(map[string]bool)
	table.Find("tr").Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() <= tickerCol || cells.Length() <= nameCol {
			return
		}
		ticker := strings.TrimSpace(cells.Eq(tickerCol).Text())
		name := strings.TrimSpace(cells.Eq(nameCol).Text())
		if ticker == "" || name == "" || seen[ticker] {
			return
		}
		seen[ticker] = true
		symbol := ticker
		if suffix != "" && !strings.Contains(symbol, ".") {
			symbol += suffix
		}
		members = append(members, model.Constituent{Symbol: symbol, Name: name, Index: index})
	})
	return members
}

// pickTable returns the first table whose headers name both a company and
// a ticker column, falling back to the first table on the page.
func pickTable(doc *goquery.Document) *goquery.Selection {
	tables := doc.Find("table")
	if tables.Length() == 0 {
		return nil
	}

	var match *goquery.Selection
	tables.EachWithBreak(func(_ int, table *goquery.Selection) bool {
		headers := headerCells(table)
		if containsAny(headers, "company", "name") && containsAny(headers, "ticker", "symbol") {
			match = table
			return false
		}
		return true
	})
	if match != nil {
		return match
	}
	return tables.First()
}

func headerCells(table *goquery.Selection) []string {
	var headers []string
	table.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(strings.TrimSpace(cell.Text())))
	})
	return headers
}

func containsAny(headers []string, words ...string) bool {
	for _, h := range headers {
		for _, w := range words {
			if strings.Contains(h, w) {
				return true
			}
		}
	}
	return false
}

// findColumn returns the index of the first header containing one of the
// given words, or fallback when none matches.
func findColumn(headers []string, fallback int, words ...string) int {
	for i, h := range headers {
		for _, w := range words {
			if strings.Contains(h, w) {
				return i
			}
		}
	}
	return fallback
}
