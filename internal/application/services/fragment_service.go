package services

import (
	"fmt"

	"github.com/pullpane/pullpane-go/internal/domain/entities/content"
	"github.com/pullpane/pullpane-go/internal/domain/entities/markup"
	"github.com/pullpane/pullpane-go/internal/domain/modal"
	"github.com/pullpane/pullpane-go/internal/infrastructure/caching"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
	"github.com/pullpane/pullpane-go/internal/presentation/templates"
)

// FragmentService orchestrates dialog fragment generation with chunk caching.
type FragmentService struct {
	dialogService *DialogService
	cacheManager  *caching.Manager
	htmlRenderer  *templates.HTMLRenderer
	logger        *logging.ChanneledLogger
}

// NewFragmentService creates a new fragment service.
func NewFragmentService(
	dialogService *DialogService,
	cacheManager *caching.Manager,
	htmlRenderer *templates.HTMLRenderer,
	logger *logging.ChanneledLogger,
) *FragmentService {
	return &FragmentService{
		dialogService: dialogService,
		cacheManager:  cacheManager,
		htmlRenderer:  htmlRenderer,
		logger:        logger,
	}
}

// GenerateFragment renders the HTML fragment for a dialog in the open state
// recorded for the session. An empty session ID renders the closed, stateless
// variant. Rendered chunks are cached per (dialog, open) pair.
func (s *FragmentService) GenerateFragment(dialogID, sessionID string) (string, error) {
	dialog, exists := s.dialogService.FindByID(dialogID)
	if !exists {
		return "", fmt.Errorf("dialog %s not found", dialogID)
	}

	isOpen := false
	if sessionID != "" {
		isOpen = s.cacheManager.GetDialogState(sessionID, dialogID)
	}

	key := caching.ChunkKey{DialogID: dialogID, IsOpen: isOpen}
	if cached, hit := s.cacheManager.GetHTMLChunk(key); hit {
		s.logger.Content().Debug("Fragment cache hit", "dialogId", dialogID, "isOpen", isOpen)
		return cached, nil
	}

	html := s.renderDialog(dialog, isOpen)
	s.cacheManager.SetHTMLChunk(key, html)
	return html, nil
}

// GenerateFragmentForState renders a dialog forced into the given state,
// bypassing session lookup. Used after a state dispatch, where the new state
// is already known.
func (s *FragmentService) GenerateFragmentForState(dialogID string, isOpen bool) (string, error) {
	dialog, exists := s.dialogService.FindByID(dialogID)
	if !exists {
		return "", fmt.Errorf("dialog %s not found", dialogID)
	}

	key := caching.ChunkKey{DialogID: dialogID, IsOpen: isOpen}
	if cached, hit := s.cacheManager.GetHTMLChunk(key); hit {
		return cached, nil
	}

	html := s.renderDialog(dialog, isOpen)
	s.cacheManager.SetHTMLChunk(key, html)
	return html, nil
}

func (s *FragmentService) renderDialog(dialog content.Dialog, isOpen bool) string {
	cfg := s.dialogService.ConfigFor(dialog)

	// The id attribute is the hx-target the backdrop's close action swaps.
	attrs := []markup.Attr{{Key: "id", Value: "dialog-" + dialog.ID}}

	node := modal.Render(cfg, isOpen, attrs, dialogBody(dialog))
	return s.htmlRenderer.Render(node)
}

// dialogBody builds the content container children for a dialog definition.
func dialogBody(dialog content.Dialog) []markup.Node {
	children := make([]markup.Node, 0, 2)
	if dialog.Title != "" {
		children = append(children, markup.Element("h2", nil, markup.Text(dialog.Title)))
	}
	if dialog.Body != "" {
		children = append(children, markup.Element("p", nil, markup.Text(dialog.Body)))
	}
	return children
}
