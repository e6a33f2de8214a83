package client

import (
	"context"
	"fmt"

	"github.com/mwantia/resorter/internal/agent"
	config "github.com/mwantia/resorter/internal/config/server"
)

// withAgent runs fn against a fully wired agent and closes it afterwards
func withAgent(fn func(ctx context.Context, a *agent.ResorterAgent) error) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server configuration: %w", err)
	}

	ctx := context.Background()
	a := agent.NewAgent(cfg)
	if err := a.Setup(ctx); err != nil {
		return err
	}
	defer a.Close(ctx)

	return fn(ctx, a)
}
