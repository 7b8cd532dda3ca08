package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pullpane/pullpane-go/internal/domain/entities/content"
	"github.com/pullpane/pullpane-go/internal/infrastructure/caching"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
	"github.com/pullpane/pullpane-go/internal/presentation/templates"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()

	cfg := logging.DefaultLoggerConfig()
	cfg.DefaultLevel = slog.LevelError
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return logger
}

func testDialog() content.Dialog {
	return content.Dialog{
		ID:         "demo",
		Slug:       "demo",
		Title:      "Demo",
		ModuleName: "m",
		Direction:  "top",
		Body:       "demo body",
	}
}

// newTestStack wires a dialog service, cache, and fragment service with the
// demo dialog registered.
func newTestStack(t *testing.T) (*DialogService, *caching.Manager, *FragmentService) {
	t.Helper()

	logger := testLogger(t)
	dialogService := NewDialogService(logger)
	require.NoError(t, dialogService.Register(testDialog()))

	cacheManager := caching.NewManager(100, time.Hour, time.Hour)
	renderer := templates.NewHTMLRenderer(templates.NewHxActionEncoder())
	fragmentService := NewFragmentService(dialogService, cacheManager, renderer, logger)

	return dialogService, cacheManager, fragmentService
}
