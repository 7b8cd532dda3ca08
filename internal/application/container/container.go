// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"

	"github.com/pullpane/pullpane-go/internal/application/services"
	"github.com/pullpane/pullpane-go/internal/infrastructure/caching"
	"github.com/pullpane/pullpane-go/internal/infrastructure/messaging"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/performance"
	"github.com/pullpane/pullpane-go/internal/presentation/templates"
	"github.com/pullpane/pullpane-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application Services (stateless singletons)
	DialogService   *services.DialogService
	FragmentService *services.FragmentService
	StateService    *services.StateService
	SessionService  *services.SessionService

	// Infrastructure Dependencies
	CacheManager *caching.Manager
	Broadcaster  *messaging.PreviewBroadcaster
	Logger       *logging.ChanneledLogger
	PerfTracker  *performance.Tracker
	HTMLRenderer *templates.HTMLRenderer
}

// NewContainer creates and wires all singleton services
func NewContainer() (*Container, error) {
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.JSONFormat = config.LogJSONFormat
	loggerConfig.OutputToConsole = config.LogToConsole
	loggerConfig.OutputToFile = config.LogToFile
	loggerConfig.LogDirectory = config.LogDirectory
	loggerConfig.DefaultLevel = logging.ParseLevel(config.LogLevel)

	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create channeled logger: %w", err)
	}

	cacheManager := caching.NewManager(config.MaxSessions, config.SessionTTL, config.HTMLChunkTTL)
	broadcaster := messaging.NewPreviewBroadcaster(config.PreviewWriteTimeout, logger)
	htmlRenderer := templates.NewHTMLRenderer(templates.NewHxActionEncoder())

	dialogService := services.NewDialogService(logger)
	fragmentService := services.NewFragmentService(dialogService, cacheManager, htmlRenderer, logger)
	stateService := services.NewStateService(dialogService, fragmentService, cacheManager, broadcaster, logger)
	sessionService := services.NewSessionService(cacheManager, logger)

	return &Container{
		DialogService:   dialogService,
		FragmentService: fragmentService,
		StateService:    stateService,
		SessionService:  sessionService,

		CacheManager: cacheManager,
		Broadcaster:  broadcaster,
		Logger:       logger,
		PerfTracker:  performance.NewTracker(10000),
		HTMLRenderer: htmlRenderer,
	}, nil
}
