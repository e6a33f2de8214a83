package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	config "github.com/mwantia/resorter/internal/config/server"
	"github.com/mwantia/fabric/pkg/container"
)

func TestResolveLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()
	sc := container.NewServiceContainer()

	if err := container.Register[LoggerServiceImpl](sc,
		container.With[LoggerService](),
		container.WithInstance(NewWriterLoggerService("resorter", config.LogServerConfig{Level: "INFO"}, &buf))); err != nil {
		t.Fatalf("Failed to register logger: %v", err)
	}

	logger, err := ResolveLogger(ctx, sc, "intake")
	if err != nil {
		t.Fatalf("Failed to resolve logger: %v", err)
	}

	logger.Info("ready")
	if !strings.Contains(buf.String(), "[resorter/intake] ready") {
		t.Errorf("Expected named entry, got '%s'", buf.String())
	}
}

func TestResolveLoggerMissing(t *testing.T) {
	if _, err := ResolveLogger(context.Background(), container.NewServiceContainer(), "api"); err == nil {
		t.Error("Expected error without registered logger")
	}
}
