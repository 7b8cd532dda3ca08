package services

import (
	"fmt"

	"github.com/pullpane/pullpane-go/internal/domain/events"
	"github.com/pullpane/pullpane-go/internal/infrastructure/caching"
	"github.com/pullpane/pullpane-go/internal/infrastructure/messaging"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
)

// StateRequest carries one dispatched dialog state event plus its session.
type StateRequest struct {
	DialogID  string
	Verb      string
	SessionID string
}

// StateService processes dialog state events dispatched by backdrop
// activations, updates the session cache, and notifies preview clients.
type StateService struct {
	dialogService   *DialogService
	fragmentService *FragmentService
	cacheManager    *caching.Manager
	broadcaster     *messaging.PreviewBroadcaster
	logger          *logging.ChanneledLogger
}

// NewStateService creates a new state service.
func NewStateService(
	dialogService *DialogService,
	fragmentService *FragmentService,
	cacheManager *caching.Manager,
	broadcaster *messaging.PreviewBroadcaster,
	logger *logging.ChanneledLogger,
) *StateService {
	return &StateService{
		dialogService:   dialogService,
		fragmentService: fragmentService,
		cacheManager:    cacheManager,
		broadcaster:     broadcaster,
		logger:          logger,
	}
}

// ProcessEvent applies a dialog state event for a session and returns the
// re-rendered fragment HTML for the new state.
func (s *StateService) ProcessEvent(req *StateRequest) (string, error) {
	if req.SessionID == "" {
		return "", fmt.Errorf("session ID required")
	}
	if req.Verb != events.VerbOpened && req.Verb != events.VerbClosed {
		return "", fmt.Errorf("unknown verb %q", req.Verb)
	}
	if _, exists := s.dialogService.FindByID(req.DialogID); !exists {
		return "", fmt.Errorf("dialog %s not found", req.DialogID)
	}

	event := events.DialogStateEvent{DialogID: req.DialogID, Verb: req.Verb}
	isOpen := event.IsOpen()

	if known := s.cacheManager.SetDialogState(req.SessionID, req.DialogID, isOpen); !known {
		return "", fmt.Errorf("unknown session %s", req.SessionID)
	}

	s.logger.Session().Info("Dialog state changed",
		"sessionId", req.SessionID, "dialogId", req.DialogID, "verb", req.Verb)

	s.cacheManager.InvalidateDialogChunks(req.DialogID)

	html, err := s.fragmentService.GenerateFragmentForState(req.DialogID, isOpen)
	if err != nil {
		return "", fmt.Errorf("failed to re-render dialog %s: %w", req.DialogID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDialogState(messaging.DialogStatePayload{
			DialogID:  req.DialogID,
			SessionID: req.SessionID,
			IsOpen:    isOpen,
			HTML:      html,
		})
	}

	return html, nil
}
