package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	"BourseDash/internal/model"
)

// YahooSource implements Source using the Yahoo Finance chart API.
type YahooSource struct {
	Client *http.Client
}

// NewYahooSource creates a new Yahoo Finance source with optional proxy support.
func NewYahooSource(proxyURL string) *YahooSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooSource{
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (y *YahooSource) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
// Result may carry the quote arrays as one entry or several; both shapes
// normalize into the same flat bar list.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []interface{} `json:"open"`
					High  []interface{} `json:"high"`
					Low   []interface{} `json:"low"`
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// rangeForDays buckets a trailing day count into a Yahoo range parameter.
func rangeForDays(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	default:
		return "2y"
	}
}

func (y *YahooSource) fetchChart(symbol, rng string) ([]model.Bar, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(symbol), rng)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := y.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d", resp.StatusCode)
	}

	return decodeChart(symbol, body)
}

func decodeChart(symbol string, body []byte) ([]model.Bar, error) {
	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	var bars []model.Bar
	for _, result := range chart.Chart.Result {
		if len(result.Indicators.Quote) == 0 {
			continue
		}
		quote := result.Indicators.Quote[0]
		// A garbled response may ship quote arrays shorter than the
		// timestamps; only index what every array actually has.
		n := len(result.Timestamp)
		for _, arr := range [][]interface{}{quote.Open, quote.High, quote.Low, quote.Close} {
			if len(arr) < n {
				n = len(arr)
			}
		}
		for i := 0; i < n; i++ {
			ts := result.Timestamp[i]
			o := toFloat(quote.Open[i])
			h := toFloat(quote.High[i])
			l := toFloat(quote.Low[i])
			c := toFloat(quote.Close[i])
			if o == 0 && h == 0 && l == 0 && c == 0 {
				continue // skip null bars (holidays etc.)
			}
			bars = append(bars, model.Bar{
				Symbol: symbol,
				Date:   time.Unix(ts, 0).UTC(),
				Open:   o,
				High:   h,
				Low:    l,
				Close:  c,
			})
		}
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

// FetchDailyHistory fetches daily bars for every symbol and joins them into
// one table. A symbol that fails is dropped from the result; the call
// returns an error only when no symbol yielded data.
func (y *YahooSource) FetchDailyHistory(symbols []string, days int) (model.PriceTable, error) {
	if len(symbols) == 0 {
		return model.PriceTable{}, nil
	}
	rng := rangeForDays(days)

	var table model.PriceTable
	var lastErr error
	for _, symbol := range symbols {
		bars, err := y.fetchChart(symbol, rng)
		if err != nil {
			log.Printf("[WARN] yahoo: %s dropped from batch: %v", symbol, err)
			lastErr = err
			continue
		}
		// Trim to requested count
		if len(bars) > days {
			bars = bars[len(bars)-days:]
		}
		table = append(table, bars...)
	}
	if len(table) == 0 && lastErr != nil {
		return model.PriceTable{}, fmt.Errorf("yahoo batch: %w", lastErr)
	}
	return table, nil
}
