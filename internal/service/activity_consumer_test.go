package service

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"annotation-notes-be/internal/pkg/logger"
	"annotation-notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestActivityConsumer_LogsDispatchedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	path := filepath.Join(t.TempDir(), "activity.log")
	activity := logger.NewIsolatedLogger(path)

	require.NoError(t, NewActivityConsumer(pubSub, "activity", activity).Consume(ctx))

	// A garbage payload is logged as a warning and does not block the next event.
	require.NoError(t, pubSub.Publish("activity", message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	sink := events.NewChannelSink(pubSub, "activity")
	require.NoError(t, sink.Publish(ctx, events.New(events.NotebookCreated, map[string]interface{}{
		"id":    "n1",
		"title": "Physics",
	})))

	assert.Eventually(t, func() bool {
		_ = activity.Sync()
		return len(readLogLines(t, path)) == 2
	}, 2*time.Second, 20*time.Millisecond)

	// gochannel does not order deliveries across publishes.
	byLevel := map[string]map[string]interface{}{}
	for _, line := range readLogLines(t, path) {
		byLevel[line["level"].(string)] = line
	}
	require.Contains(t, byLevel, "WARN")
	require.Contains(t, byLevel, "INFO")
	assert.Equal(t, "Dropped undecodable event", byLevel["WARN"]["message"])
	assert.Equal(t, "NOTEBOOK_CREATED", byLevel["INFO"]["message"])
	details := byLevel["INFO"]["details"].(map[string]interface{})
	assert.Equal(t, "Physics", details["title"])
	assert.Contains(t, details, "occurred_at")
}
