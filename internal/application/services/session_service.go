package services

import (
	"fmt"

	"github.com/pullpane/pullpane-go/internal/infrastructure/caching"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
	"github.com/pullpane/pullpane-go/internal/infrastructure/security"
)

// SessionService mints preview sessions and keeps them warm in the cache.
type SessionService struct {
	cacheManager *caching.Manager
	logger       *logging.ChanneledLogger
}

// NewSessionService creates a new session service.
func NewSessionService(cacheManager *caching.Manager, logger *logging.ChanneledLogger) *SessionService {
	return &SessionService{
		cacheManager: cacheManager,
		logger:       logger,
	}
}

// CreateSession mints a ULID session ID and registers it in the cache.
func (s *SessionService) CreateSession() (string, error) {
	sessionID := security.GenerateULID()

	if state, _ := s.cacheManager.EnsureSession(sessionID); state == nil {
		return "", fmt.Errorf("session capacity reached")
	}

	s.logger.Session().Info("Session created", "sessionId", sessionID)
	return sessionID, nil
}

// TouchSession refreshes a known session, creating it when capacity allows.
// Returns the session ID actually in effect.
func (s *SessionService) TouchSession(sessionID string) (string, error) {
	if sessionID == "" {
		return s.CreateSession()
	}
	if state, _ := s.cacheManager.EnsureSession(sessionID); state == nil {
		return "", fmt.Errorf("session capacity reached")
	}
	return sessionID, nil
}
