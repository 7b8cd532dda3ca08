// Package services contains the application services orchestrating dialog
// registration, fragment rendering, and state dispatch.
package services

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pullpane/pullpane-go/internal/domain/entities/content"
	"github.com/pullpane/pullpane-go/internal/domain/events"
	"github.com/pullpane/pullpane-go/internal/domain/modal"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
)

// DialogService holds the registry of dialog definitions and derives modal
// configurations from them.
type DialogService struct {
	dialogs map[string]content.Dialog
	logger  *logging.ChanneledLogger
	mu      sync.RWMutex
}

// NewDialogService creates an empty dialog registry.
func NewDialogService(logger *logging.ChanneledLogger) *DialogService {
	return &DialogService{
		dialogs: make(map[string]content.Dialog),
		logger:  logger,
	}
}

// Register adds or replaces a dialog definition. Unknown direction slugs are
// rejected.
func (s *DialogService) Register(dialog content.Dialog) error {
	if dialog.ID == "" {
		return fmt.Errorf("dialog must have an id")
	}
	if _, ok := modal.ParseDirection(dialog.Direction); !ok {
		return fmt.Errorf("dialog %s has unknown direction %q", dialog.ID, dialog.Direction)
	}

	s.mu.Lock()
	s.dialogs[dialog.ID] = dialog
	s.mu.Unlock()

	s.logger.Content().Info("Registered dialog", "dialogId", dialog.ID, "direction", dialog.Direction)
	return nil
}

// FindByID returns a dialog definition by ID.
func (s *DialogService) FindByID(dialogID string) (content.Dialog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dialog, exists := s.dialogs[dialogID]
	return dialog, exists
}

// List returns all registered dialogs sorted by ID.
func (s *DialogService) List() []content.Dialog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dialogs := make([]content.Dialog, 0, len(s.dialogs))
	for _, d := range s.dialogs {
		dialogs = append(dialogs, d)
	}
	sort.Slice(dialogs, func(i, j int) bool { return dialogs[i].ID < dialogs[j].ID })
	return dialogs
}

// ConfigFor derives the modal configuration for a dialog, with the close
// action targeting that dialog.
func (s *DialogService) ConfigFor(dialog content.Dialog) modal.Config[events.DialogStateEvent] {
	direction, _ := modal.ParseDirection(dialog.Direction)
	return modal.NewConfig(dialog.ModuleName, direction, events.Close(dialog.ID))
}
