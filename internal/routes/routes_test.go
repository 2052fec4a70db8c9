package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/config"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/models"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/sentiment"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/services"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPersister struct{}

func (nopPersister) Load() ([]models.Review, error) { return nil, nil }

func (nopPersister) Append([]models.Review, models.Review) error { return nil }

func newApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	st, err := store.New(nopPersister{})
	require.NoError(t, err)
	svc := services.NewReviewService(st, sentiment.NewAnalyzer(), clockwork.NewRealClock())

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	Setup(app, cfg, handlers.NewReviewHandler(svc), handlers.NewHealthHandler(svc, cfg.StoreDriver, nil))
	return app
}

func status(t *testing.T, app *fiber.App, method, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSetup_AnyPathServesReviews(t *testing.T) {
	app := newApp(t, &config.Config{StoreDriver: config.StoreCSV})

	for _, path := range []string{"/", "/reviews", "/a/b/c"} {
		assert.Equal(t, http.StatusOK, status(t, app, http.MethodGet, path), path)
		assert.Equal(t, http.StatusBadRequest, status(t, app, http.MethodPost, path), path)
		assert.Equal(t, http.StatusMethodNotAllowed, status(t, app, http.MethodPut, path), path)
	}
	assert.Equal(t, http.StatusOK, status(t, app, http.MethodGet, "/healthz"))
}

func TestSetup_RateLimit(t *testing.T) {
	app := newApp(t, &config.Config{StoreDriver: config.StoreCSV, RateLimitPerMinute: 2})

	assert.Equal(t, http.StatusOK, status(t, app, http.MethodGet, "/"))
	assert.Equal(t, http.StatusOK, status(t, app, http.MethodGet, "/"))
	assert.Equal(t, http.StatusTooManyRequests, status(t, app, http.MethodGet, "/"))

	// health checks bypass the limiter
	assert.Equal(t, http.StatusOK, status(t, app, http.MethodGet, "/healthz"))
}
