// Package resolver turns arbitrary identifiers (exchange-local tickers,
// ISINs, aliases) into canonical market symbols, backed by the persisted
// mapping store and a suffix heuristic validated against live data.
package resolver

import (
	"log"
	"strings"

	"BourseDash/internal/mapping"
	"BourseDash/internal/model"
)

// Source tags where a resolution came from.
type Source string

const (
	SourceMapping   Source = "mapping"
	SourceHeuristic Source = "heuristic"
)

// Prober checks that a candidate symbol has recent price data. Satisfied
// by any marketdata Source.
type Prober interface {
	FetchDailyHistory(symbols []string, days int) (model.PriceTable, error)
}

// Resolver resolves raw identifiers to canonical symbols. It never returns
// an error: every failure path collapses to an absent result.
type Resolver struct {
	store     *mapping.Store
	prober    Prober
	suffix    string
	probeDays int
}

// New creates a Resolver. suffix is the default domestic-exchange suffix
// appended by the heuristic (".PA" when empty); probeDays is the lookback
// of the validating probe (5 when zero).
func New(store *mapping.Store, prober Prober, suffix string, probeDays int) *Resolver {
	if suffix == "" {
		suffix = ".PA"
	}
	if probeDays <= 0 {
		probeDays = 5
	}
	return &Resolver{store: store, prober: prober, suffix: suffix, probeDays: probeDays}
}

// Normalize trims and uppercases a raw identifier.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func isShortAlnum(s string) bool {
	if len(s) == 0 || len(s) > 6 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// Guess applies the local heuristic only, without touching the store or
// the network. An identifier that already carries a market-suffix
// separator is taken as canonical; a short alphanumeric one gets the
// default suffix appended.
func (r *Resolver) Guess(raw string) (string, bool) {
	t := Normalize(raw)
	if t == "" {
		return "", false
	}
	if strings.Contains(t, ".") {
		return t, true
	}
	if isShortAlnum(t) {
		return t + r.suffix, true
	}
	return "", false
}

// Resolve maps a raw identifier to a canonical symbol. The mapping store
// is the fast, authoritative path; otherwise a heuristic guess is
// validated with a short-lookback probe and persisted on success.
// Negative probe results are never cached.
func (r *Resolver) Resolve(raw string) (string, Source, bool) {
	key := Normalize(raw)
	if key == "" {
		return "", "", false
	}

	if sym, ok := r.store.Get(key); ok {
		return sym, SourceMapping, true
	}

	guess, ok := r.Guess(key)
	if !ok {
		return "", "", false
	}

	// A transient probe failure is treated exactly like "no data".
	table, err := r.prober.FetchDailyHistory([]string{guess}, r.probeDays)
	if err != nil || table.Empty() {
		return "", "", false
	}

	if err := r.store.Put(key, guess); err != nil {
		log.Printf("[WARN] resolver: persist mapping %s -> %s: %v", key, guess, err)
	}
	return guess, SourceHeuristic, true
}
