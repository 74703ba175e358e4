package model

// Headline is one news item title with its link.
type Headline struct {
	Title string
	URL   string
}

// SentimentSummary is the crude news-sentiment verdict for one company.
type SentimentSummary struct {
	Text      string
	Score     float64
	Headlines []Headline
}
