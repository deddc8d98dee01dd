package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"annotation-notes-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	got []Event
	err error
}

func (s *recordingSink) Publish(ctx context.Context, evt Event) error {
	s.got = append(s.got, evt)
	return s.err
}

func TestFanOutDispatcher_FailingSinkDoesNotStopOthers(t *testing.T) {
	broken := &recordingSink{err: errors.New("broker down")}
	healthy := &recordingSink{}

	d := NewFanOutDispatcher(logger.NewNopLogger())
	d.Register("broken", broken)
	d.Register("healthy", healthy)

	d.Dispatch(context.Background(), New(NotebookCreated, map[string]interface{}{"title": "Physics"}))

	require.Len(t, broken.got, 1)
	require.Len(t, healthy.got, 1)
	assert.Equal(t, NotebookCreated, healthy.got[0].EventType())
}

func TestFanOutDispatcher_SinkSeesLiveContextAfterCancel(t *testing.T) {
	var sinkErr error
	sink := sinkFunc(func(ctx context.Context, evt Event) error {
		sinkErr = ctx.Err()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewFanOutDispatcher(logger.NewNopLogger())
	d.Register("probe", sink)
	d.Dispatch(ctx, New(UserRegistered, nil))

	assert.NoError(t, sinkErr)
}

type sinkFunc func(ctx context.Context, evt Event) error

func (f sinkFunc) Publish(ctx context.Context, evt Event) error { return f(ctx, evt) }

func TestEnvelopeRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := Encode(BaseEvent{Type: AnnotationUpdated, Data: map[string]interface{}{"id": "abc"}, OccurredAt: at})
	require.NoError(t, err)

	evt, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, AnnotationUpdated, evt.EventType())
	assert.Equal(t, "abc", evt.Payload()["id"])
	assert.True(t, at.Equal(evt.Timestamp()))
}

func TestChannelSink_PublishesEnvelope(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(context.Background(), "activity")
	require.NoError(t, err)

	sink := NewChannelSink(pubSub, "activity")
	require.NoError(t, sink.Publish(context.Background(), New(NotebookDeleted, map[string]interface{}{"id": "n1"})))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, NotebookDeleted, msg.Metadata.Get("event_type"))
		evt, err := Decode(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, "n1", evt.Payload()["id"])
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}
