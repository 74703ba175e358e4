package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"BourseDash/internal/advisor"
	"BourseDash/internal/aggregator"
	"BourseDash/internal/config"
	"BourseDash/internal/constituents"
	"BourseDash/internal/mapping"
	"BourseDash/internal/marketdata"
	"BourseDash/internal/metrics"
	"BourseDash/internal/model"
	"BourseDash/internal/news"
	"BourseDash/internal/portfolio"
	"BourseDash/internal/recorder"
	"BourseDash/internal/report"
	"BourseDash/internal/resolver"
	"BourseDash/internal/scheduler"
)

// app bundles the assembled pipeline for the console commands.
type app struct {
	cfg       *config.Config
	prices    *marketdata.CachedSource
	consts    *constituents.Provider
	resolver  *resolver.Resolver
	news      *news.Client
	advisor   *advisor.Advisor
	portfolio *portfolio.Store
	agg       *aggregator.Aggregator
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	yahoo := marketdata.NewYahooSource(cfg.Proxy)
	a := &app{
		cfg:       cfg,
		prices:    marketdata.NewCachedSource(yahoo),
		consts:    constituents.NewProvider(),
		news:      news.NewClient(cfg.News.Lang),
		advisor:   advisor.New(cfg.Profiles),
		portfolio: portfolio.NewStore(cfg.Data.PortfolioFile),
	}
	// Probes bypass the request cache so a later positive result is never
	// shadowed by a cached negative.
	a.resolver = resolver.New(mapping.NewStore(cfg.Data.MappingFile), yahoo,
		cfg.Market.DefaultSuffix, cfg.Market.ProbeDays)
	a.agg = aggregator.New(a.consts, a.prices)

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "serve":
		a.serve()
	case "refresh":
		a.refresh()
	case "resolve":
		a.resolve(os.Args[2:])
	case "search":
		a.search(os.Args[2:])
	case "portfolio":
		a.reviewPortfolio()
	default:
		fmt.Fprintf(os.Stderr, "usage: dash [serve|refresh|resolve ID|search ID|portfolio]\n")
		os.Exit(2)
	}
}

func (a *app) newRecorder() recorder.Recorder {
	if a.cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	rec, err := recorder.NewSQLiteRecorder(a.cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return rec
}

func (a *app) serve() {
	log.Println("[INFO] BourseDash starting...")
	rec := a.newRecorder()
	defer rec.Close()

	sched := scheduler.New(a.agg, a.consts, a.prices, a.news, rec,
		a.cfg.Market.Indices, a.cfg.Market.LookbackDays)
	if err := sched.Register(a.cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		go sched.RunNow()
	}

	log.Println("[INFO] BourseDash is running. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

func (a *app) refresh() {
	rec := a.newRecorder()
	defer rec.Close()

	at := time.Now()
	rows := a.agg.Aggregate(a.cfg.Market.Indices, a.cfg.Market.LookbackDays)
	if len(rows) == 0 {
		fmt.Println("Aucune donnée disponible.")
		return
	}
	sum := aggregator.Summarize(rows)
	if err := rec.RecordSnapshot(at, rows, sum); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
	fmt.Print(report.FormatRun(at, rows, sum, 5))
}

func (a *app) resolve(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: dash resolve ID")
		os.Exit(2)
	}
	symbol, source, ok := a.resolver.Resolve(args[0])
	if !ok {
		fmt.Printf("%s: identifiant non reconnu\n", resolver.Normalize(args[0]))
		return
	}
	fmt.Printf("%s -> %s (%s)\n", resolver.Normalize(args[0]), symbol, source)
}

func (a *app) search(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: dash search ID")
		os.Exit(2)
	}
	symbol, _, ok := a.resolver.Resolve(args[0])
	if !ok {
		fmt.Printf("%s: identifiant non reconnu\n", resolver.Normalize(args[0]))
		return
	}

	table, err := a.prices.FetchDailyHistory([]string{symbol}, a.cfg.Market.LookbackDays)
	if err != nil || table.Empty() {
		fmt.Printf("Aucune donnée pour %s.\n", symbol)
		return
	}

	var row model.MetricRow
	for _, r := range metrics.Compute(table) {
		if r.Symbol == symbol {
			row = r
			break
		}
	}
	params := a.advisor.Params(a.cfg.Profile)
	levels := advisor.Levels(row, params)
	decision := advisor.Decide(row, false, 0, params.VolMax)
	sentiment := a.news.Summarize(symbol, "")
	fmt.Print(report.FormatAnalysis(row, levels, decision, sentiment))
}

func (a *app) reviewPortfolio() {
	positions, err := a.portfolio.Load()
	if err != nil {
		log.Fatalf("[FATAL] load portfolio: %v", err)
	}
	if len(positions) == 0 {
		fmt.Println("Portefeuille vide.")
		return
	}

	var symbols []string
	seen := make(map[string]bool)
	for _, p := range positions {
		if p.Ticker != "" && !seen[p.Ticker] {
			seen[p.Ticker] = true
			symbols = append(symbols, p.Ticker)
		}
	}
	table, err := a.prices.FetchDailyHistory(symbols, a.cfg.Market.LookbackDays)
	if err != nil {
		table = model.PriceTable{}
	}

	params := a.advisor.Params(a.cfg.Profile)
	views := portfolio.Review(positions, metrics.Compute(table), params)
	fmt.Print(report.FormatPositions(views))
}
