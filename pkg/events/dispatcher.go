package events

import (
	"context"
	"sync"
	"time"

	"annotation-notes-be/internal/pkg/logger"
)

const sinkTimeout = 2 * time.Second

// Sink delivers an event to one destination (a broker, an in-process bus).
type Sink interface {
	Publish(ctx context.Context, evt Event) error
}

// Dispatcher is what services see. Dispatch never reports failure to the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, evt Event)
}

type namedSink struct {
	name string
	sink Sink
}

type FanOutDispatcher struct {
	mu     sync.RWMutex
	sinks  []namedSink
	logger logger.ILogger
}

func NewFanOutDispatcher(log logger.ILogger) *FanOutDispatcher {
	return &FanOutDispatcher{logger: log}
}

func (d *FanOutDispatcher) Register(name string, sink Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sinks = append(d.sinks, namedSink{name: name, sink: sink})
}

// Dispatch hands evt to every sink in registration order. A slow or broken
// sink is logged and skipped.
func (d *FanOutDispatcher) Dispatch(ctx context.Context, evt Event) {
	d.mu.RLock()
	sinks := make([]namedSink, len(d.sinks))
	copy(sinks, d.sinks)
	d.mu.RUnlock()

	for _, s := range sinks {
		sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
		err := s.sink.Publish(sinkCtx, evt)
		cancel()
		if err != nil {
			d.logger.Warn("EVENTS", "Failed to deliver event", map[string]interface{}{
				"sink":  s.name,
				"event": evt.EventType(),
				"error": err.Error(),
			})
		}
	}
}

type NopDispatcher struct{}

func (NopDispatcher) Dispatch(ctx context.Context, evt Event) {}
