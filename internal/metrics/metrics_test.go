package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"annotation-notes-be/internal/pkg/apperr"
	"annotation-notes-be/internal/pkg/logger"
	"annotation-notes-be/internal/pkg/serverutils"
	"annotation-notes-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(m *Metrics) *fiber.App {
	app := fiber.New()
	app.Use(m.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/metrics", m.Handler())
	app.Get("/notebook/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "missing" {
			return apperr.NotFound("Notebook not found")
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestMiddlewareCountsByRouteAndStatus(t *testing.T) {
	m := New()
	app := newTestApp(m)

	for _, id := range []string{"a", "b", "missing"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/notebook/"+id, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/notebook/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/notebook/:id", "GET", "404")))
}

func TestEventSinkCountsByType(t *testing.T) {
	m := New()
	sink := m.EventSink()

	require.NoError(t, sink.Publish(context.Background(), events.New(events.NotebookCreated, nil)))
	require.NoError(t, sink.Publish(context.Background(), events.New(events.NotebookCreated, nil)))
	require.NoError(t, sink.Publish(context.Background(), events.New(events.AnnotationDeleted, nil)))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.domainEvents.WithLabelValues(events.NotebookCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.domainEvents.WithLabelValues(events.AnnotationDeleted)))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	require.NoError(t, m.EventSink().Publish(context.Background(), events.New(events.UserRegistered, nil)))

	resp, err := newTestApp(m).Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `domain_events_total{type="USER_REGISTERED"} 1`)
}
