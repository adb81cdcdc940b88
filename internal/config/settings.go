package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/domain"
	"github.com/vntrade/tariff-calculator/internal/news"
)

// EnvPrefix is prepended to environment overrides (TARIFFCALC_SERVER_ADDR, ...).
const EnvPrefix = "TARIFFCALC"

// Settings is the application configuration resolved from flags, env and config file.
type Settings struct {
	LogLevel     string
	LogFormat    string
	RatesFile    string
	RateSchedule string
	ServerAddr   string
	MaxScenarios int

	NewsSource  string
	NewsFeedURL string
	NewsAPIKey  string
	NewsLimit   int
	NewsTimeout time.Duration
	NewsTTL     time.Duration
}

// DefaultNewsFeedURL is the feed used when news.feed_url is unset.
const DefaultNewsFeedURL = news.DefaultFeedURL

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("rates.file", "")
	v.SetDefault("rates.schedule", calculation.ScheduleStandard)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("compare.max_scenarios", domain.MaxScenarios)
	v.SetDefault("news.source", "rss")
	v.SetDefault("news.feed_url", DefaultNewsFeedURL)
	v.SetDefault("news.api_key", "")
	v.SetDefault("news.limit", 10)
	v.SetDefault("news.timeout", 10*time.Second)
	v.SetDefault("news.cache_ttl", 5*time.Minute)
}

// LoadSettings reads settings from v and validates them.
func LoadSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		LogLevel:     v.GetString("logging.level"),
		LogFormat:    v.GetString("logging.format"),
		RatesFile:    v.GetString("rates.file"),
		RateSchedule: v.GetString("rates.schedule"),
		ServerAddr:   v.GetString("server.addr"),
		MaxScenarios: v.GetInt("compare.max_scenarios"),
		NewsSource:   v.GetString("news.source"),
		NewsFeedURL:  v.GetString("news.feed_url"),
		NewsAPIKey:   v.GetString("news.api_key"),
		NewsLimit:    v.GetInt("news.limit"),
		NewsTimeout:  v.GetDuration("news.timeout"),
		NewsTTL:      v.GetDuration("news.cache_ttl"),
	}

	switch s.LogFormat {
	case "console", "json":
	default:
		return Settings{}, fmt.Errorf("invalid log format: %s", s.LogFormat)
	}
	switch s.NewsSource {
	case "rss", "newsapi":
	default:
		return Settings{}, fmt.Errorf("invalid news source: %s", s.NewsSource)
	}
	if s.NewsSource == "newsapi" && s.NewsAPIKey == "" {
		return Settings{}, fmt.Errorf("news.api_key is required for the newsapi source")
	}
	if _, err := calculation.RateTableFor(s.RateSchedule); err != nil {
		return Settings{}, err
	}
	if s.MaxScenarios <= 0 {
		return Settings{}, fmt.Errorf("compare.max_scenarios must be positive")
	}
	if s.NewsLimit <= 0 {
		s.NewsLimit = 10
	}
	return s, nil
}
