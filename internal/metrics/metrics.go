// Package metrics exposes Prometheus counters for HTTP traffic and domain events.
package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"annotation-notes-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	domainEvents *prometheus.CounterVec
}

// New builds a private registry so tests and multiple apps never collide on
// the global one.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status"},
			[]string{"path", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency", Buckets: prometheus.DefBuckets},
			[]string{"path", "method"},
		),
		domainEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "domain_events_total", Help: "Domain events dispatched by type"},
			[]string{"type"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpLatency,
		m.domainEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records one request. Register it ahead of the error handler so
// the final status code is already written when it runs.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		m.httpLatency.WithLabelValues(path, c.Method()).Observe(time.Since(start).Seconds())
		m.httpRequests.WithLabelValues(path, c.Method(), strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// EventSink counts every dispatched event. It never fails.
func (m *Metrics) EventSink() events.Sink {
	return eventCounter{counter: m.domainEvents}
}

type eventCounter struct {
	counter *prometheus.CounterVec
}

func (s eventCounter) Publish(_ context.Context, evt events.Event) error {
	s.counter.WithLabelValues(evt.EventType()).Inc()
	return nil
}
