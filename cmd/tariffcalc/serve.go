package main

import (
	"github.com/spf13/cobra"
	"github.com/vntrade/tariff-calculator/internal/news"
	"github.com/vntrade/tariff-calculator/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			addr := a.settings.ServerAddr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}

			srv := server.New(eng,
				server.WithNews(news.NewCachedSource(newsSource(a.settings, a.logger), a.settings.NewsTTL)),
				server.WithMaxScenarios(a.settings.MaxScenarios),
				server.WithLogger(a.logger),
			)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address (overrides server.addr)")
	return cmd
}
