package news

import (
	"strings"

	"BourseDash/internal/model"
)

// Headline keyword dictionaries, initialized once and read-only after.
var positiveKeywords = []string{
	"résultats", "bénéfice", "contrat", "relève", "guidance", "record",
	"upgrade", "partenariat", "dividende", "approbation",
}

var negativeKeywords = []string{
	"profit warning", "retard", "procès", "amende", "downgrade", "abaisse",
	"enquête", "rappel", "départ", "incident",
}

// ScoreHeadline scores one title in [-1, 1]: +0.2 per positive keyword
// hit, -0.2 per negative one.
func ScoreHeadline(title string) float64 {
	lower := strings.ToLower(title)
	score := 0.0
	for _, k := range positiveKeywords {
		if strings.Contains(lower, k) {
			score += 0.2
		}
	}
	for _, k := range negativeKeywords {
		if strings.Contains(lower, k) {
			score -= 0.2
		}
	}
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

// Summarize fetches headlines for a company and condenses them into a
// one-line verdict with a mean sentiment score. The name query is tried
// with the ticker first, then alone.
func (c *Client) Summarize(name, ticker string) model.SentimentSummary {
	items := c.Search(strings.TrimSpace(name + " " + ticker))
	if len(items) == 0 {
		items = c.Search(name)
	}
	if len(items) == 0 {
		return model.SentimentSummary{
			Text: "Pas d'actualité saillante : mouvement technique / macro.",
		}
	}

	total := 0.0
	for _, it := range items {
		total += ScoreHeadline(it.Title)
	}
	mean := total / float64(len(items))

	var text string
	switch {
	case mean > 0.15:
		text = "Hausse soutenue par des nouvelles positives."
	case mean < -0.15:
		text = "Baisse liée à des nouvelles défavorables."
	default:
		text = "Actualité mitigée/neutre : mouvement surtout technique."
	}
	return model.SentimentSummary{Text: text, Score: mean, Headlines: items}
}
