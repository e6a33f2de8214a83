package server

import (
	"context"
	"fmt"

	"github.com/mwantia/resorter/internal/agent"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	config "github.com/mwantia/resorter/internal/config/server"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the candidate HTTP API",
		Long: `Start the resorter agent.

The agent loads all stored candidates and serves the HTTP API for intake,
filtering, sorting and filter presets until it is interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server configuration: %w", err)
			}

			return agent.NewAgent(cfg).Serve(context.Background())
		},
	}

	cmd.Flags().String("address", "", "address to serve the HTTP API on (overrides http.address)")
	viper.BindPFlag("http.address", cmd.Flags().Lookup("address"))

	return cmd
}
