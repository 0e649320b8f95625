// Command mcp-sentry starts the Sentry MCP server.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spo0nman/mcp-sentry/internal/config"
	"github.com/spo0nman/mcp-sentry/internal/server"
)

func main() {
	// stdout carries the MCP stdio protocol; all logging goes to stderr.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		transport string
		addr      string
	)

	root := &cobra.Command{
		Use:           "mcp-sentry",
		Short:         "MCP server exposing Sentry error-tracking tools",
		Version:       server.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			srv := server.New(cfg, logger)

			switch transport {
			case "stdio":
				logger.Info().Msg("starting MCP server on stdio")
				return srv.ServeStdio()
			case "http":
				if cfg.MCPToken == "" {
					logger.Warn().Msg("MCP_TOKEN not set; HTTP endpoints will be open")
				}
				logger.Info().Str("addr", addr).Msg("starting MCP server on HTTP")
				return http.ListenAndServe(addr, srv.Router())
			default:
				return fmt.Errorf("unknown transport %q: must be \"stdio\" or \"http\"", transport)
			}
		},
	}
	root.Flags().StringVar(&transport, "transport", "stdio", "transport to serve on: stdio or http")
	root.Flags().StringVar(&addr, "addr", ":3000", "listen address for the http transport")

	if err := root.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
