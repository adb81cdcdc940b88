package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/news"
	"github.com/vntrade/tariff-calculator/pkg/dateutil"
	"go.uber.org/zap"
)

// newsSource builds the configured news source.
func newsSource(s config.Settings, logger *zap.Logger) news.Source {
	opts := []news.Option{news.WithTimeout(s.NewsTimeout), news.WithLogger(logger)}
	if s.NewsSource == "newsapi" {
		return news.NewNewsAPISource(s.NewsAPIKey, opts...)
	}
	return news.NewRSSSource(s.NewsFeedURL, opts...)
}

func newsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Show recent Vietnam-US trade and tariff headlines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := a.settings
			if src, _ := cmd.Flags().GetString("source"); src != "" {
				settings.NewsSource = src
				if err := validateNewsSource(settings); err != nil {
					return err
				}
			}
			limit := settings.NewsLimit
			if cmd.Flags().Changed("limit") {
				limit, _ = cmd.Flags().GetInt("limit")
			}

			items, err := newsSource(settings, a.logger).Fetch(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), items)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No headlines found.")
				return nil
			}
			now := time.Now()
			for _, it := range items {
				fmt.Fprintln(out, headerStyle.Render(it.Title))
				meta := it.Source
				if !it.PublishedAt.IsZero() {
					meta += " · " + dateutil.FormatShortDate(it.PublishedAt) + " (" + it.Age(now) + ")"
				}
				fmt.Fprintf(out, "  %s\n", meta)
				if it.Link != "" {
					fmt.Fprintf(out, "  %s\n", it.Link)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().String("source", "", "news source override (rss, newsapi)")
	cmd.Flags().Int("limit", 10, "maximum number of headlines")
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

func validateNewsSource(s config.Settings) error {
	switch s.NewsSource {
	case "rss":
		return nil
	case "newsapi":
		if s.NewsAPIKey == "" {
			return fmt.Errorf("news.api_key is required for the newsapi source")
		}
		return nil
	default:
		return fmt.Errorf("invalid news source: %s", s.NewsSource)
	}
}
