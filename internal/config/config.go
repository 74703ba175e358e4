package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"BourseDash/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		MappingFile   string `yaml:"mapping_file"`
		PortfolioFile string `yaml:"portfolio_file"`
	} `yaml:"data"`
	Market struct {
		Indices       []string `yaml:"indices"`
		LookbackDays  int      `yaml:"lookback_days"`
		ProbeDays     int      `yaml:"probe_days"`
		DefaultSuffix string   `yaml:"default_suffix"`
	} `yaml:"market"`
	News struct {
		Lang string `yaml:"lang"`
	} `yaml:"news"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Profiles map[string]model.ProfileParams `yaml:"profiles"`
	Profile  string                         `yaml:"profile"`
	Proxy    string                         `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MAPPING_PATH"); v != "" {
		cfg.Data.MappingFile = v
	}
	if v := os.Getenv("PORTFOLIO_PATH"); v != "" {
		cfg.Data.PortfolioFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Market.LookbackDays = n
		}
	}
	if v := os.Getenv("MARKET_INDICES"); v != "" {
		var indices []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				indices = append(indices, s)
			}
		}
		cfg.Market.Indices = indices
	}
	if v := os.Getenv("INVESTOR_PROFILE"); v != "" {
		cfg.Profile = v
	}

	// Defaults
	if cfg.Data.MappingFile == "" {
		cfg.Data.MappingFile = "data/id_mapping.json"
	}
	if cfg.Data.PortfolioFile == "" {
		cfg.Data.PortfolioFile = "data/portfolio.json"
	}
	if len(cfg.Market.Indices) == 0 {
		cfg.Market.Indices = []string{"CAC 40", "DAX 40", "NASDAQ 100", "S&P 500", "Dow Jones"}
	}
	if cfg.Market.LookbackDays == 0 {
		cfg.Market.LookbackDays = 90
	}
	if cfg.Market.ProbeDays == 0 {
		cfg.Market.ProbeDays = 5
	}
	if cfg.Market.DefaultSuffix == "" {
		cfg.Market.DefaultSuffix = ".PA"
	}
	if cfg.News.Lang == "" {
		cfg.News.Lang = "fr"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 7 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/boursedash.db"
	}
	if cfg.Profile == "" {
		cfg.Profile = "Neutre"
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Market.LookbackDays <= 0 {
		return fmt.Errorf("market.lookback_days must be positive")
	}
	if c.Market.ProbeDays <= 0 {
		return fmt.Errorf("market.probe_days must be positive")
	}
	if len(c.Market.Indices) == 0 {
		return fmt.Errorf("market.indices must not be empty")
	}
	for name, p := range c.Profiles {
		if p.VolMax <= 0 || p.TargetMult <= 0 || p.StopMult <= 0 || p.EntryMult <= 0 {
			return fmt.Errorf("profile %q: all parameters must be positive", name)
		}
	}
	return nil
}
