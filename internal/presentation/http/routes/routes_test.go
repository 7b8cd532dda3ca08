package routes

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pullpane/pullpane-go/internal/application/container"
	"github.com/pullpane/pullpane-go/internal/application/services"
	"github.com/pullpane/pullpane-go/internal/domain/entities/content"
	"github.com/pullpane/pullpane-go/internal/infrastructure/caching"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/performance"
	"github.com/pullpane/pullpane-go/internal/presentation/http/middleware"
	"github.com/pullpane/pullpane-go/internal/presentation/templates"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.DefaultLevel = slog.LevelError
	logger, err := logging.NewChanneledLogger(loggerConfig)
	require.NoError(t, err)

	cacheManager := caching.NewManager(100, time.Hour, time.Hour)
	htmlRenderer := templates.NewHTMLRenderer(templates.NewHxActionEncoder())

	dialogService := services.NewDialogService(logger)
	require.NoError(t, dialogService.Register(content.Dialog{
		ID:         "demo",
		Slug:       "demo",
		Title:      "Demo",
		ModuleName: "m",
		Direction:  "top",
		Body:       "demo body",
	}))

	fragmentService := services.NewFragmentService(dialogService, cacheManager, htmlRenderer, logger)
	stateService := services.NewStateService(dialogService, fragmentService, cacheManager, nil, logger)
	sessionService := services.NewSessionService(cacheManager, logger)

	return SetupRoutes(&container.Container{
		DialogService:   dialogService,
		FragmentService: fragmentService,
		StateService:    stateService,
		SessionService:  sessionService,
		CacheManager:    cacheManager,
		Logger:          logger,
		PerfTracker:     performance.NewTracker(100),
		HTMLRenderer:    htmlRenderer,
	})
}

func createSession(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visit", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body["sessionId"])
	return body["sessionId"]
}

func postState(router *gin.Engine, sessionID string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/state", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetDialogFragment(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/fragments/dialogs/demo", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `class="m m--top"`)
	assert.Contains(t, w.Body.String(), `id="dialog-demo"`)
	assert.NotContains(t, w.Body.String(), "m-isOpen")
}

func TestGetDialogFragmentUnknown(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/fragments/dialogs/ghost", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDialogs(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dialogs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"demo"`)
}

func TestPostVisitMintsSession(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	sessionID := createSession(t, router)

	// A second visit with the same header keeps the session ID.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visit", nil)
	req.Header.Set(middleware.SessionHeader, sessionID)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, sessionID, body["sessionId"])
}

func TestPostStateRequiresSession(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := postState(router, "", url.Values{"dialogId": {"demo"}, "verb": {"OPENED"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostStateRequiresForm(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	sessionID := createSession(t, router)

	w := postState(router, sessionID, url.Values{"dialogId": {"demo"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostStateOpensAndCloses(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	sessionID := createSession(t, router)

	open := postState(router, sessionID, url.Values{"dialogId": {"demo"}, "verb": {"OPENED"}})
	require.Equal(t, http.StatusOK, open.Code)
	assert.Contains(t, open.Body.String(), "m-isOpen")

	// The session-aware fragment endpoint now reflects the open state.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fragments/dialogs/demo", nil)
	req.Header.Set(middleware.SessionHeader, sessionID)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "m-isOpen")

	closed := postState(router, sessionID, url.Values{"dialogId": {"demo"}, "verb": {"CLOSED"}})
	require.Equal(t, http.StatusOK, closed.Code)
	assert.NotContains(t, closed.Body.String(), "m-isOpen")
}

func TestPostStateUnknownVerb(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	sessionID := createSession(t, router)

	w := postState(router, sessionID, url.Values{"dialogId": {"demo"}, "verb": {"WIGGLED"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
