// Package news fetches recent headlines from Google News RSS and scores
// them with a crude keyword sentiment model.
package news

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"BourseDash/internal/model"
)

const maxHeadlines = 6

// Client fetches headline feeds, cached per query until Flush.
type Client struct {
	parser *gofeed.Parser
	lang   string
	mu     sync.Mutex
	cache  map[string][]model.Headline
}

// NewClient creates a news client for the given language ("fr" by default).
func NewClient(lang string) *Client {
	if lang == "" {
		lang = "fr"
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 12 * time.Second}
	parser.UserAgent = "Mozilla/5.0"
	return &Client{
		parser: parser,
		lang:   lang,
		cache:  make(map[string][]model.Headline),
	}
}

func (c *Client) feedURL(query string) string {
	lang := strings.ToLower(c.lang)
	region := strings.ToUpper(c.lang)
	return fmt.Sprintf("https://news.google.com/rss/search?q=%s&hl=%s-%s&gl=%s&ceid=%s:%s",
		url.QueryEscape(query), lang, region, region, region, region)
}

// Search returns up to 6 recent headlines for a query. Failures collapse
// to an empty result; empty results are cached like any other.
func (c *Client) Search(query string) []model.Headline {
	c.mu.Lock()
	cached, hit := c.cache[query]
	c.mu.Unlock()
	if hit {
		return cached
	}

	var items []model.Headline
	feed, err := c.parser.ParseURL(c.feedURL(query))
	if err != nil {
		log.Printf("[WARN] news: %q: %v", query, err)
	} else {
		for _, it := range feed.Items {
			if it.Title == "" {
				continue
			}
			items = append(items, model.Headline{Title: it.Title, URL: it.Link})
			if len(items) == maxHeadlines {
				break
			}
		}
	}

	c.mu.Lock()
	c.cache[query] = items
	c.mu.Unlock()
	return items
}

// Flush clears the headline cache.
func (c *Client) Flush() {
	c.mu.Lock()
	c.cache = make(map[string][]model.Headline)
	c.mu.Unlock()
}
